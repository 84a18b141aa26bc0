package extract

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"intlc/internal/catalog"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion = 1

// diskCache хранит результат обработки файла по хешу содержимого и опций.
// Файлы пишутся атомарно, поэтому параллельные воркеры не мешают друг другу.
type diskCache struct {
	dir         string
	fingerprint string
}

type cachedMessage struct {
	ID             string            `msgpack:"id"`
	DefaultMessage string            `msgpack:"msg"`
	Description    string            `msgpack:"desc,omitempty"`
	HasDescription bool              `msgpack:"hasdesc,omitempty"`
	Start          int               `msgpack:"start"`
	End            int               `msgpack:"end"`
	Meta           map[string]string `msgpack:"meta,omitempty"`
}

type cachePayload struct {
	Schema   uint16          `msgpack:"schema"`
	Messages []cachedMessage `msgpack:"messages"`
}

func openCache(dir, fingerprint string) (*diskCache, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &diskCache{dir: dir, fingerprint: fingerprint}, nil
}

// pathFor: одинаковый текст в .ts и .tsx разбирается по-разному.
func (c *diskCache) pathFor(hash [32]byte, jsx bool) string {
	mode := "ts"
	if jsx {
		mode = "jsx"
	}
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+"-"+c.fingerprint+"-"+mode+".mp")
}

// get returns the cached messages for content hash parsed in the given JSX
// mode; ok is false on a miss or an unreadable entry.
func (c *diskCache) get(hash [32]byte, jsx bool) ([]fileMessage, bool) {
	if c == nil {
		return nil, false
	}
	f, err := os.Open(c.pathFor(hash, jsx))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var p cachePayload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil || p.Schema != cacheSchemaVersion {
		return nil, false
	}
	out := make([]fileMessage, len(p.Messages))
	for i, m := range p.Messages {
		out[i] = fileMessage{Message: catalog.Message{
			ID:             m.ID,
			DefaultMessage: m.DefaultMessage,
			Description:    m.Description,
			HasDescription: m.HasDescription,
			Start:          m.Start,
			End:            m.End,
			Meta:           m.Meta,
		}}
	}
	return out, true
}

func (c *diskCache) put(hash [32]byte, jsx bool, msgs []fileMessage) error {
	if c == nil {
		return nil
	}
	p := cachePayload{Schema: cacheSchemaVersion, Messages: make([]cachedMessage, len(msgs))}
	for i, m := range msgs {
		p.Messages[i] = cachedMessage{
			ID:             m.ID,
			DefaultMessage: m.DefaultMessage,
			Description:    m.Description,
			HasDescription: m.HasDescription,
			Start:          m.Start,
			End:            m.End,
			Meta:           m.Meta,
		}
	}

	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(&p); err != nil {
		return errors.Join(err, f.Close(), os.Remove(tmp))
	}
	if err := f.Close(); err != nil {
		return errors.Join(err, os.Remove(tmp))
	}
	// атомарная замена
	return os.Rename(tmp, c.pathFor(hash, jsx))
}
