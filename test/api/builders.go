package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync/atomic"
)

const serialNumberPrefix = "SN"

var (
	// runID distinguishes serial numbers from concurrent runs against the same
	// service.
	runID = newRunID()

	serialNumberCounter atomic.Uint32
)

func newRunID() string {
	bytes := make([]byte, 3) // 6 hex characters
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// GenerateSerialNumber returns a serial number that is unique within the process,
// and almost certainly across processes.  The optional suffix is appended verbatim.
func GenerateSerialNumber(suffix ...string) string {
	count := serialNumberCounter.Add(1)

	return fmt.Sprintf("%s%s%04x%s", serialNumberPrefix, runID, count, strings.Join(suffix, ""))
}

// GenerateSerialNumbers returns one serial number per suffix.
func GenerateSerialNumbers(suffixes ...string) []string {
	serialNumbers := make([]string, len(suffixes))

	for i, suffix := range suffixes {
		serialNumbers[i] = GenerateSerialNumber(suffix)
	}

	return serialNumbers
}
