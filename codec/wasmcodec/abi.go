package wasmcodec

import (
	"encoding/binary"
	"errors"

	"github.com/wippyai/toon-bridge/codec"
)

// Options pack into the flags word passed to the guest: delimiter in the
// low two bits, strict in bit 2.
const (
	flagDelimiterComma = 0x0
	flagDelimiterTab   = 0x1
	flagDelimiterPipe  = 0x2
	flagStrict         = 0x4
)

func packFlags(opts codec.Options) uint32 {
	var flags uint32
	switch opts.Delimiter {
	case codec.Tab:
		flags = flagDelimiterTab
	case codec.Pipe:
		flags = flagDelimiterPipe
	default:
		flags = flagDelimiterComma
	}
	if opts.Strict {
		flags |= flagStrict
	}
	return flags
}

// Guest results pack a pointer and length into one u64: ptr<<32 | len.
func unpackResult(packed uint64) (ptr, length uint32) {
	return uint32(packed >> 32), uint32(packed)
}

// Response status codes, first byte of every response buffer.
const (
	statusOK     = 0x0
	statusSyntax = 0x1 // 4-byte LE line number, then message
	statusError  = 0x2 // free-text message
	statusIO     = 0x3 // I/O description
	statusFormat = 0x4 // embedded-format description
)

// parseResponse splits a status-prefixed response buffer into its payload
// or the corresponding codec error variant.
func parseResponse(response []byte) ([]byte, error) {
	if len(response) == 0 {
		return nil, &codec.MessageError{Message: "empty response from codec module"}
	}
	payload := response[1:]
	switch response[0] {
	case statusOK:
		return payload, nil
	case statusSyntax:
		if len(payload) < 4 {
			return nil, &codec.MessageError{Message: "truncated syntax error response"}
		}
		line := int(binary.LittleEndian.Uint32(payload[:4]))
		return nil, &codec.SyntaxError{Line: line, Message: string(payload[4:])}
	case statusError:
		return nil, &codec.MessageError{Message: string(payload)}
	case statusIO:
		return nil, &codec.IOError{Err: errors.New(string(payload))}
	case statusFormat:
		return nil, &codec.EmbeddedFormatError{Stage: "JSON", Detail: string(payload)}
	default:
		return nil, &codec.MessageError{Message: "unknown response status"}
	}
}
