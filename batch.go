package toonbridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/toon-bridge/convert"
	"github.com/wippyai/toon-bridge/errors"
	"github.com/wippyai/toon-bridge/value"
)

// EncodeBatch encodes many host values in one call. Results preserve input
// order; a failure on any element fails the whole batch with no partial
// output.
//
// The batch runs in two cleanly separated phases: all inputs are converted
// while the host-graph lock is held once, then the lock is released for the
// whole codec phase. That amortizes the lock round-trip across N items and
// maximizes the lock-free span.
func (b *Bridge) EncodeBatch(hosts []any, delimiter string, strict bool) ([]string, error) {
	opts, err := buildOptions(delimiter, strict)
	if err != nil {
		return nil, err
	}

	// Phase 1: convert all inputs with the lock held.
	values := make([]*value.Value, 0, len(hosts))
	b.graph.Lock()
	for _, host := range hosts {
		v, err := convert.ToValue(host)
		if err != nil {
			b.graph.Unlock()
			return nil, err
		}
		values = append(values, v)
	}
	b.graph.Unlock()

	// Phase 2: codec work with the lock released.
	results := make([]string, 0, len(values))
	for _, v := range values {
		text, err := b.codec.Encode(v, opts)
		if err != nil {
			return nil, mapCodecError(errors.PhaseEncode, err)
		}
		results = append(results, text)
	}
	b.logger.Debug("encoded batch", zap.Int("count", len(results)))
	return results, nil
}

// DecodeBatch decodes many TOON texts in one call. Results preserve input
// order; a failure on any element fails the whole batch with no partial
// output.
//
// The codec phase runs first with the lock released; outputs are then
// converted to host values under a single lock acquisition.
func (b *Bridge) DecodeBatch(texts []string, delimiter string, strict bool) ([]any, error) {
	opts, err := buildOptions(delimiter, strict)
	if err != nil {
		return nil, err
	}

	// Phase 1: codec work with the lock released.
	values := make([]*value.Value, 0, len(texts))
	for _, text := range texts {
		v, err := b.codec.Decode(text, opts)
		if err != nil {
			return nil, mapCodecError(errors.PhaseDecode, err)
		}
		values = append(values, v)
	}

	// Phase 2: convert all outputs with the lock held once.
	results := make([]any, 0, len(values))
	b.graph.Lock()
	for _, v := range values {
		results = append(results, convert.FromValue(v))
	}
	b.graph.Unlock()
	return results, nil
}
