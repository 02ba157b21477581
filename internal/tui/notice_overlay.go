package tui

import "github.com/MKhiriev/code-sharing-box/models"

type noticeOverlayModel struct {
	notice models.Notice
}

func (m noticeOverlayModel) View() string {
	var heading string
	switch m.notice.Kind {
	case models.NoticeSuccess:
		heading = successStyle.Render("Success")
	case models.NoticeFailure:
		heading = errorStyle.Render("Error")
	default:
		heading = titleStyle.Render("Info")
	}

	content := heading + "\n\n" + m.notice.Text + "\n\n" + helpStyle.Render(helpLine(keys.dismiss))
	return overlayBoxStyle.Render(content)
}
