// Package loyalty holds the pure rules of the scan and reward engine:
// tag decoding, visit evaluation, ledger arithmetic, partner grants and
// the redemption state machine. Nothing here touches a store.
package loyalty

import (
	"net/url"
	"strings"
	"unicode/utf16"

	"loyalty/internal/errors"
)

// ErrMalformedTag is returned when a tag payload cannot be decoded into a tag id.
var ErrMalformedTag = errors.New("malformed tag payload")

// TagPayload is what the client read from an NFC tag.
// Text carries an already decoded text or URI; NDEF carries the raw message.
type TagPayload struct {
	Text string
	NDEF []byte
}

const (
	ndefFlagShortRecord = 0x10
	ndefFlagIDLength    = 0x08
	ndefTNFMask         = 0x07
	ndefTNFWellKnown    = 0x01

	textStatusUTF16      = 0x80
	textStatusLangLength = 0x3f
)

// uriPrefixes is the NFC Forum URI identifier code table.
var uriPrefixes = [...]string{
	"", "http://www.", "https://www.", "http://", "https://", "tel:", "mailto:",
	"ftp://anonymous:anonymous@", "ftp://ftp.", "ftps://", "sftp://", "smb://",
	"nfs://", "ftp://", "dav://", "news:", "telnet://", "imap:", "rtsp://",
	"urn:", "pop:", "sip:", "sips:", "tftp:", "btspp://", "btl2cap://",
	"btgoep://", "tcpobex://", "irdaobex://", "file://", "urn:epc:id:",
	"urn:epc:tag:", "urn:epc:pat:", "urn:epc:raw:", "urn:epc:", "urn:nfc:",
}

// TagID extracts the tag identifier from a payload. A text value is the id
// itself; a URI yields its last non-empty path segment.
func TagID(p TagPayload) (string, error) {
	if len(p.NDEF) > 0 {
		value, isURI, err := DecodeNDEF(p.NDEF)
		if err != nil {
			return "", err
		}
		if isURI {
			return lastPathSegment(value)
		}

		return nonEmpty(value)
	}

	text := strings.TrimSpace(p.Text)
	if u, err := url.Parse(text); err == nil && u.Scheme != "" && u.Host != "" {
		return lastPathSegment(text)
	}

	return nonEmpty(text)
}

// DecodeNDEF decodes the first record of an NDEF message. Only well-known
// text (T) and URI (U) records are supported.
func DecodeNDEF(msg []byte) (value string, isURI bool, err error) {
	if len(msg) < 3 {
		return "", false, errors.Wrap(ErrMalformedTag, "record header too short")
	}

	header := msg[0]
	if header&ndefTNFMask != ndefTNFWellKnown {
		return "", false, errors.Wrap(ErrMalformedTag, "unsupported type name format")
	}

	typeLen := int(msg[1])
	pos := 2

	var payloadLen int
	if header&ndefFlagShortRecord != 0 {
		payloadLen = int(msg[pos])
		pos++
	} else {
		if len(msg) < pos+4 {
			return "", false, errors.Wrap(ErrMalformedTag, "payload length truncated")
		}
		payloadLen = int(msg[pos])<<24 | int(msg[pos+1])<<16 | int(msg[pos+2])<<8 | int(msg[pos+3])
		pos += 4
	}

	idLen := 0
	if header&ndefFlagIDLength != 0 {
		if len(msg) <= pos {
			return "", false, errors.Wrap(ErrMalformedTag, "id length truncated")
		}
		idLen = int(msg[pos])
		pos++
	}

	if len(msg) < pos+typeLen+idLen+payloadLen || payloadLen < 0 {
		return "", false, errors.Wrap(ErrMalformedTag, "record truncated")
	}

	recordType := string(msg[pos : pos+typeLen])
	pos += typeLen + idLen
	payload := msg[pos : pos+payloadLen]

	switch recordType {
	case "T":
		text, err := decodeTextRecord(payload)

		return text, false, err
	case "U":
		uri, err := decodeURIRecord(payload)

		return uri, true, err
	default:
		return "", false, errors.Wrapf(ErrMalformedTag, "unsupported record type %q", recordType)
	}
}

func decodeTextRecord(payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", errors.Wrap(ErrMalformedTag, "empty text record")
	}

	status := payload[0]
	langLen := int(status & textStatusLangLength)
	if len(payload) < 1+langLen {
		return "", errors.Wrap(ErrMalformedTag, "language code truncated")
	}

	body := payload[1+langLen:]
	if status&textStatusUTF16 == 0 {
		return string(body), nil
	}

	if len(body)%2 != 0 {
		return "", errors.Wrap(ErrMalformedTag, "odd UTF-16 length")
	}

	bigEndian := true
	if len(body) >= 2 {
		switch {
		case body[0] == 0xff && body[1] == 0xfe:
			bigEndian = false
			body = body[2:]
		case body[0] == 0xfe && body[1] == 0xff:
			body = body[2:]
		}
	}

	units := make([]uint16, 0, len(body)/2)
	for i := 0; i+1 < len(body); i += 2 {
		if bigEndian {
			units = append(units, uint16(body[i])<<8|uint16(body[i+1]))
		} else {
			units = append(units, uint16(body[i+1])<<8|uint16(body[i]))
		}
	}

	return string(utf16.Decode(units)), nil
}

func decodeURIRecord(payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", errors.Wrap(ErrMalformedTag, "empty URI record")
	}

	code := int(payload[0])
	if code >= len(uriPrefixes) {
		return "", errors.Wrapf(ErrMalformedTag, "unknown URI identifier code %#x", code)
	}

	return uriPrefixes[code] + string(payload[1:]), nil
}

func lastPathSegment(raw string) (string, error) {
	path := raw
	if u, err := url.Parse(raw); err == nil {
		path = u.Path
		if path == "" {
			path = u.Opaque
		}
	}

	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segment := strings.TrimSpace(segments[i]); segment != "" {
			return segment, nil
		}
	}

	return "", errors.Wrap(ErrMalformedTag, "URI has no path segment")
}

func nonEmpty(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.Wrap(ErrMalformedTag, "empty tag value")
	}

	return value, nil
}
