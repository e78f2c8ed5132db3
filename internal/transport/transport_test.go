package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUnreachable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("status code: 500"), want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{
			name: "dial error",
			err:  fmt.Errorf("client.Post > %w", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}),
			want: true,
		},
		{
			name: "read error",
			err:  &net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset by peer")},
			want: false,
		},
		{
			name: "dns error",
			err:  &net.DNSError{Err: "no such host", Name: "kanafy.invalid"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnreachable(tt.err))
		})
	}
}

func TestIsUnreachable_ClosedServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := http.Get(url)
	require.Error(t, err)
	assert.True(t, IsUnreachable(err))
}
