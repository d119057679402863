package services

import (
	"testing"

	"github.com/dmitrijs2005/medianest/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletionGuard_VerifyPin(t *testing.T) {
	tests := []struct {
		name      string
		pin       string
		candidate string
		want      bool
	}{
		{"exact", "1234", "1234", true},
		{"surrounding whitespace", "1234", " 1234 ", true},
		{"configured with whitespace", " 1234\n", "1234", true},
		{"wrong digit", "1234", "1235", false},
		{"prefix", "1234", "123", false},
		{"empty candidate", "1234", "", false},
		{"no pin configured", "", "", false},
		{"no pin configured, blank candidate", "", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewDeletionGuard(tt.pin)
			assert.Equal(t, tt.want, g.VerifyPin(tt.candidate))
		})
	}
}

func TestDeletionGuard_ConfirmReleasesOnce(t *testing.T) {
	g := NewDeletionGuard("1234")
	g.RequestDeletion("a1")

	id, ok := g.Pending()
	require.True(t, ok)
	assert.Equal(t, "a1", id)

	got, err := g.Confirm(" 1234 ")
	require.NoError(t, err)
	assert.Equal(t, "a1", got)

	_, ok = g.Pending()
	assert.False(t, ok)

	_, err = g.Confirm("1234")
	require.ErrorIs(t, err, common.ErrNoPendingDeletion)
}

func TestDeletionGuard_MismatchKeepsPending(t *testing.T) {
	g := NewDeletionGuard("1234")
	g.RequestDeletion("a1")

	_, err := g.Confirm("1235")
	require.ErrorIs(t, err, common.ErrGuardRejection)

	id, ok := g.Pending()
	require.True(t, ok)
	assert.Equal(t, "a1", id)

	got, err := g.Confirm("1234")
	require.NoError(t, err)
	assert.Equal(t, "a1", got)
}

func TestDeletionGuard_RequestReplacesAndCancel(t *testing.T) {
	g := NewDeletionGuard("1234")
	g.RequestDeletion("a1")
	g.RequestDeletion("b2")

	id, _ := g.Pending()
	assert.Equal(t, "b2", id)

	g.Cancel()
	_, ok := g.Pending()
	assert.False(t, ok)
}

func TestDeletionGuard_EmptyPinDisablesDeletion(t *testing.T) {
	g := NewDeletionGuard("")
	g.RequestDeletion("a1")

	_, err := g.Confirm("")
	require.ErrorIs(t, err, common.ErrGuardRejection)
}
