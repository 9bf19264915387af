package lead

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/singleflight"
)

// inflight agrupa los envíos idénticos en curso: mientras uno está pendiente,
// los duplicados esperan y reciben el mismo resultado sin llamar al receptor.
type inflight struct {
	group singleflight.Group
}

// fingerprint huella BLAKE2b-256 del formulario ya normalizado (sin id ni fecha).
func fingerprint(kind string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("huella del formulario: %w", err)
	}
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// do ejecuta fn una sola vez por huella. shared indica que el resultado se compartió.
func (f *inflight) do(kind string, payload any, fn func() (any, error)) (v any, shared bool, err error) {
	key, err := fingerprint(kind, payload)
	if err != nil {
		return nil, false, err
	}
	v, err, shared = f.group.Do(key, fn)
	return v, shared, err
}
