package resultenc

import (
	"encoding/json"
	"fmt"

	"github.com/probviz/distlab/format"
	"github.com/probviz/distlab/schema"
)

// Marshal serializes a calculation result to JSON and compresses it with the
// given algorithm. With format.CompressionNone the plain JSON bytes are
// returned.
func Marshal(res schema.CalculationResult, compression format.CompressionType) ([]byte, error) {
	codec, err := CreateCodec(compression)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	return codec.Compress(payload)
}

// Unmarshal reverses Marshal: it decompresses data with the given algorithm
// and decodes the JSON payload.
func Unmarshal(data []byte, compression format.CompressionType) (schema.CalculationResult, error) {
	codec, err := CreateCodec(compression)
	if err != nil {
		return schema.CalculationResult{}, err
	}

	payload, err := codec.Decompress(data)
	if err != nil {
		return schema.CalculationResult{}, err
	}

	var res schema.CalculationResult
	if err := json.Unmarshal(payload, &res); err != nil {
		return schema.CalculationResult{}, fmt.Errorf("unmarshal result: %w", err)
	}

	return res, nil
}
