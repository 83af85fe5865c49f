package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	printer = &ConsolePrinter{fileName: "shop.rb", source: []byte("module A\n  X = 1\nend\n")}
	defer func() { printer = nil }()

	Info(11, "message", "additionalInfo")
	Warn(-1, "whole file")

	pending := Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, "INFO: shop.rb 2:3 message\n\tadditionalInfo", pending[0])
	assert.Equal(t, "WARN: shop.rb whole file", pending[1])

	WriteAll()
	assert.Empty(t, Pending())
}

func TestDisabledPrinter(t *testing.T) {
	printer = nil
	assert.NotPanics(t, func() {
		Info(0, "message")
		Warn(0, "message")
		WriteAll()
	})
	assert.Nil(t, Pending())
}
