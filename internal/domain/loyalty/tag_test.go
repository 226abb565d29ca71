package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortRecord(recordType string, payload []byte) []byte {
	msg := []byte{0xD1, byte(len(recordType)), byte(len(payload))}
	msg = append(msg, recordType...)

	return append(msg, payload...)
}

func TestTagID_Text(t *testing.T) {
	tests := []struct {
		name    string
		payload TagPayload
		want    string
		wantErr bool
	}{
		{"plain text", TagPayload{Text: " tag-001 "}, "tag-001", false},
		{"https uri", TagPayload{Text: "https://loyalty.example.com/t/tag-002"}, "tag-002", false},
		{"uri trailing slash", TagPayload{Text: "https://loyalty.example.com/t/tag-003/"}, "tag-003", false},
		{"uri without path", TagPayload{Text: "https://loyalty.example.com"}, "", true},
		{"empty", TagPayload{Text: "   "}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TagID(tt.payload)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedTag)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagID_NDEFTextRecord(t *testing.T) {
	payload := append([]byte{0x02}, "entag-100"...)

	got, err := TagID(TagPayload{NDEF: shortRecord("T", payload)})
	require.NoError(t, err)
	assert.Equal(t, "tag-100", got)
}

func TestTagID_NDEFTextRecordUTF16(t *testing.T) {
	payload := []byte{0x82, 'e', 'n', 0xFE, 0xFF, 0x00, 'a', 0x00, '1'}

	got, err := TagID(TagPayload{NDEF: shortRecord("T", payload)})
	require.NoError(t, err)
	assert.Equal(t, "a1", got)
}

func TestTagID_NDEFURIRecord(t *testing.T) {
	payload := append([]byte{0x04}, "loyalty.example.com/t/tag-200"...)

	got, err := TagID(TagPayload{NDEF: shortRecord("U", payload)})
	require.NoError(t, err)
	assert.Equal(t, "tag-200", got)
}

func TestTagID_NDEFLongRecord(t *testing.T) {
	payload := append([]byte{0x00}, "https://x.example/tags/long-1"...)
	msg := []byte{0xC1, 0x01, 0x00, 0x00, 0x00, byte(len(payload)), 'U'}
	msg = append(msg, payload...)

	got, err := TagID(TagPayload{NDEF: msg})
	require.NoError(t, err)
	assert.Equal(t, "long-1", got)
}

func TestDecodeNDEF_Errors(t *testing.T) {
	tests := []struct {
		name string
		msg  []byte
	}{
		{"too short", []byte{0xD1}},
		{"not well-known", []byte{0xD2, 0x01, 0x01, 'T', 0x00}},
		{"truncated payload", []byte{0xD1, 0x01, 0x09, 'T', 0x02}},
		{"unknown type", shortRecord("Sp", []byte{0x00})},
		{"unknown uri code", shortRecord("U", []byte{0x7F, 'x'})},
		{"language overflow", shortRecord("T", []byte{0x05, 'e'})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeNDEF(tt.msg)
			assert.ErrorIs(t, err, ErrMalformedTag)
		})
	}
}
