package embeddings

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
)

// Artifact encodings.
const (
	// FormatFloat stores the embedding as a JSON array of floats.
	FormatFloat = "float"
	// FormatCompact stores the embedding as base64 of packed little-endian
	// int16 samples scaled by 32767.
	FormatCompact = "int16-compact"
)

const quantScale = 32767

// Metadata mirrors the icon fields captured at generation time.
type Metadata struct {
	Tags       []string `json:"tags,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// ArtifactEntry is one icon's record in the embedding artifact. The
// Embedding field is either a base64 string (int16-compact) or a float
// array, per Format; when Format is absent it is inferred from the JSON
// shape.
type ArtifactEntry struct {
	Embedding json.RawMessage `json:"embedding"`
	Metadata  *Metadata       `json:"metadata,omitempty"`
	Format    string          `json:"format,omitempty"`
}

// Artifact is the generated mapping from icon name to embedding record.
type Artifact map[string]ArtifactEntry

// NewCompactEntry builds an int16-compact artifact entry for a vector.
func NewCompactEntry(vector []float32, meta *Metadata) (ArtifactEntry, error) {
	encoded, err := json.Marshal(EncodeCompact(vector))
	if err != nil {
		return ArtifactEntry{}, err
	}
	return ArtifactEntry{
		Embedding: encoded,
		Metadata:  meta,
		Format:    FormatCompact,
	}, nil
}

// DecodeArtifact parses artifact JSON and decodes every entry's vector.
func DecodeArtifact(data []byte) (map[string][]float32, error) {
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return artifact.Vectors()
}

// Vectors decodes every entry into a float vector keyed by icon name.
func (a Artifact) Vectors() (map[string][]float32, error) {
	vectors := make(map[string][]float32, len(a))
	for name, entry := range a {
		vector, err := entry.Vector()
		if err != nil {
			return nil, fmt.Errorf("icon %q: %w", name, err)
		}
		vectors[name] = vector
	}
	return vectors, nil
}

// Vector decodes the entry's embedding according to its format.
func (e ArtifactEntry) Vector() ([]float32, error) {
	format := e.Format
	if format == "" {
		format = inferFormat(e.Embedding)
	}

	switch format {
	case FormatCompact:
		var encoded string
		if err := json.Unmarshal(e.Embedding, &encoded); err != nil {
			return nil, fmt.Errorf("compact embedding is not a string: %w", err)
		}
		return DecodeCompact(encoded)
	case FormatFloat:
		var vector []float32
		if err := json.Unmarshal(e.Embedding, &vector); err != nil {
			return nil, fmt.Errorf("float embedding is not an array: %w", err)
		}
		return vector, nil
	default:
		return nil, fmt.Errorf("unknown embedding format %q", format)
	}
}

func inferFormat(raw json.RawMessage) string {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '"':
			return FormatCompact
		default:
			return FormatFloat
		}
	}
	return FormatFloat
}

// DecodeCompact reverses the int16 quantization: each sample is a packed
// little-endian int16 divided by 32767.
func DecodeCompact(encoded string) ([]float32, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64 embedding: %w", err)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("compact embedding has odd byte length %d", len(raw))
	}

	vector := make([]float32, len(raw)/2)
	for i := range vector {
		sample := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		vector[i] = float32(sample) / quantScale
	}
	return vector, nil
}

// EncodeCompact quantizes a vector to the int16-compact encoding.
// Components are clamped to [-1,1] before scaling.
func EncodeCompact(vector []float32) string {
	raw := make([]byte, len(vector)*2)
	for i, v := range vector {
		clamped := math.Max(-1, math.Min(1, float64(v)))
		sample := int16(math.Round(clamped * quantScale))
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(sample))
	}
	return base64.StdEncoding.EncodeToString(raw)
}
