package privacy

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeIP(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ipv4 address", input: "117.239.18.47", expected: "117.239.18.0"},
		{name: "ipv4 localhost", input: "127.0.0.1", expected: "127.0.0.0"},
		{name: "ipv4-mapped ipv6", input: "::ffff:10.1.2.3", expected: "10.1.2.0"},
		{name: "ipv6 compressed", input: "2001:db8:85a3::8a2e:370:7334", expected: "2001:0db8:85a3::"},
		{name: "ipv6 loopback", input: "::1", expected: "0000:0000:0000::"},
		{name: "empty", input: "", expected: "unknown"},
		{name: "unknown", input: "unknown", expected: "unknown"},
		{name: "not an ip", input: "bhubaneswar", expected: "invalid"},
		{name: "with port", input: "192.168.1.1:8080", expected: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AnonymizeIP(tt.input))
		})
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/schemes", nil)
	r.RemoteAddr = "49.37.112.9:53122"
	r.Header.Set("X-Forwarded-For", "8.8.8.8")
	assert.Equal(t, "49.37.112.0", ClientIP(r))

	r.RemoteAddr = "[2401:4900:1c3a::5]:443"
	assert.Equal(t, "2401:4900:1c3a::", ClientIP(r))
}

func TestMaskMobile(t *testing.T) {
	assert.Equal(t, "******2345", MaskMobile("9437012345"))
	assert.Equal(t, "*****", MaskMobile("94370"))
	assert.Equal(t, "**********", MaskMobile("94370abcde"))
	assert.Empty(t, MaskMobile(""))
}
