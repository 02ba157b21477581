// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	screenTitle     = "Code Sharing Box"
	lastUpdatedText = "Last Updated At:"
	placeholder     = "Enter your message here..."

	minEditorHeight = 3
	// header, dividers, status and help lines around the editor
	chromeHeight = 10
	chromeWidth  = 6
)

// syncModel is the single editor screen:
// 1) mounts the controller on Init
// 2) mirrors every edit into the controller
// 3) runs saves and copies as commands so the editor stays responsive
// 4) shows notices one at a time as a modal overlay
type syncModel struct {
	ctx        context.Context
	controller Controller
	buildInfo  models.AppBuildInfo

	editor  textarea.Model
	notices []models.Notice
	mounted bool

	logger *logger.Logger
}

func newSyncModel(ctx context.Context, controller Controller, buildInfo models.AppBuildInfo, logger *logger.Logger) syncModel {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(minEditorHeight * 4)
	ta.Focus()

	return syncModel{
		ctx:        ctx,
		controller: controller,
		buildInfo:  buildInfo,
		editor:     ta,
		logger:     logger,
	}
}

func (m syncModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.cmdMount())
}

func (m syncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.SetWidth(max(msg.Width-chromeWidth, 1))
		m.editor.SetHeight(max(msg.Height-chromeHeight, minEditorHeight))
		return m, nil

	case mountedMsg:
		m.mounted = true
		m.editor.SetValue(m.controller.Buffer())
		return m, nil

	case noticeMsg:
		m.notices = append(m.notices, msg.notice)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) && (msg.String() == "ctrl+c" || !m.overlayShown()) {
			return m, tea.Quit
		}
		if m.overlayShown() {
			if key.Matches(msg, keys.dismiss) {
				m.notices = m.notices[1:]
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.save):
			m.controller.Edit(m.editor.Value())
			return m, m.cmdSave()
		case key.Matches(msg, keys.clear):
			m.controller.Clear()
			m.editor.Reset()
			return m, nil
		case key.Matches(msg, keys.copy):
			m.controller.Edit(m.editor.Value())
			return m, m.cmdCopy()
		case key.Matches(msg, keys.info):
			m.notices = append(m.notices, buildInfoNotice(m.buildInfo))
			return m, nil
		}
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.controller.Edit(after)
	}

	return m, cmd
}

func (m syncModel) View() string {
	if m.overlayShown() {
		return appStyle.Render(noticeOverlayModel{notice: m.notices[0]}.View())
	}

	header := lastUpdatedText
	if label := m.controller.LastUpdated(); label != "" {
		header += " " + label
	}

	var status string
	switch {
	case !m.mounted:
		status = "Loading..."
	case m.controller.State() == models.StateSaving:
		status = "Saving..."
	}

	return renderPage(header, screenTitle, m.editor.View(), status,
		helpLine(keys.save, keys.clear, keys.copy, keys.info, keys.quit))
}

func (m syncModel) overlayShown() bool {
	return len(m.notices) > 0
}

func (m syncModel) cmdMount() tea.Cmd {
	return func() tea.Msg {
		m.controller.Mount(m.ctx)
		return mountedMsg{}
	}
}

func (m syncModel) cmdSave() tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{notice: m.controller.Save(m.ctx)}
	}
}

func (m syncModel) cmdCopy() tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{notice: m.controller.Copy()}
	}
}
