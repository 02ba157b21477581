// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/MKhiriev/code-sharing-box/models"
)

// DeviceIDLength is the number of characters in a generated device identity.
const DeviceIDLength = 10

// deviceIDSpace is 36^10, the number of distinct base-36 tokens of
// DeviceIDLength characters.
var deviceIDSpace = new(big.Int).Exp(big.NewInt(36), big.NewInt(DeviceIDLength), nil)

// DeviceIDGenerator produces opaque device identities: DeviceIDLength
// lowercase base-36 characters ([a-z0-9]).
type DeviceIDGenerator struct {
	random io.Reader
}

// NewDeviceIDGenerator returns a generator reading from crypto/rand.
func NewDeviceIDGenerator() *DeviceIDGenerator {
	return &DeviceIDGenerator{random: rand.Reader}
}

// NewDeviceIDGeneratorFromReader returns a generator reading entropy from r.
func NewDeviceIDGeneratorFromReader(r io.Reader) *DeviceIDGenerator {
	return &DeviceIDGenerator{random: r}
}

// Generate draws a uniform number below 36^10 and renders it in base 36,
// left-padded with zeros to DeviceIDLength characters.
func (g *DeviceIDGenerator) Generate() (models.DeviceIdentity, error) {
	n, err := rand.Int(g.random, deviceIDSpace)
	if err != nil {
		return "", fmt.Errorf("error generating device id: %w", err)
	}

	token := strconv.FormatInt(n.Int64(), 36)
	if pad := DeviceIDLength - len(token); pad > 0 {
		token = strings.Repeat("0", pad) + token
	}

	return models.DeviceIdentity(token), nil
}
