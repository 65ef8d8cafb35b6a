package newsletter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newskit/modules/newsletter"
)

func TestUnsubscribeToken(t *testing.T) {
	t.Parallel()

	t.Run("derivation is deterministic and verifiable", func(t *testing.T) {
		t.Parallel()

		token := newsletter.UnsubscribeToken("reader@example.com", "secret")
		assert.Equal(t, token, newsletter.UnsubscribeToken("reader@example.com", "secret"))
		assert.True(t, newsletter.VerifyUnsubscribeToken("reader@example.com", token, "secret"))
	})

	t.Run("token is url-safe", func(t *testing.T) {
		t.Parallel()

		token := newsletter.UnsubscribeToken("reader+tag@example.com", "secret")
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
		assert.NotContains(t, token, "=")
		require.Len(t, strings.Split(token, "."), 2)
	})

	t.Run("rejects a token for a different address", func(t *testing.T) {
		t.Parallel()

		token := newsletter.UnsubscribeToken("reader@example.com", "secret")
		assert.False(t, newsletter.VerifyUnsubscribeToken("other@example.com", token, "secret"))
	})

	t.Run("rejects a token minted with another secret", func(t *testing.T) {
		t.Parallel()

		token := newsletter.UnsubscribeToken("reader@example.com", "wrong")
		assert.False(t, newsletter.VerifyUnsubscribeToken("reader@example.com", token, "secret"))
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		t.Parallel()

		token := newsletter.UnsubscribeToken("reader@example.com", "secret")
		tampered := token[:len(token)-1] + "A"
		if tampered == token {
			tampered = token[:len(token)-1] + "B"
		}
		assert.False(t, newsletter.VerifyUnsubscribeToken("reader@example.com", tampered, "secret"))
	})
}
