package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"mica/internal/diag"
	"mica/internal/project"
	"mica/internal/source"
	"mica/internal/token"
)

// Current schema version - increment when TokenPayload format changes
const diskCacheSchemaVersion uint16 = 1

// schemaDigest подмешивается в ключ, чтобы смена формата инвалидировала
// старые записи без явной очистки.
var schemaDigest = project.Digest{0: byte(diskCacheSchemaVersion)}

// DiskCache хранит токены лексирования по хешу содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken — плоское представление токена для сериализации.
// Span хранится как смещения; FileID восстанавливается при чтении.
type CachedToken struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
}

// TokenPayload stores the cached token stream of one source file.
type TokenPayload struct {
	Schema uint16
	Path   string
	Hash   project.Digest
	Tokens []CachedToken
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory (tests, --cache-dir).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CacheKey строит ключ записи из хеша содержимого файла и версии схемы.
func CacheKey(fileHash [32]byte) project.Digest {
	return project.Combine(project.Digest(fileHash), schemaDigest)
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := fmt.Sprintf("%x", key[:])
	// Подкаталог "tokens" для удобства читаемости/очистки.
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *TokenPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key project.Digest, out *TokenPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// tokensToPayload converts a lexed token stream to its cached form.
func tokensToPayload(file *source.File, tokens []token.Token) *TokenPayload {
	payload := &TokenPayload{
		Schema: diskCacheSchemaVersion,
		Path:   file.Path,
		Hash:   project.Digest(file.Hash),
		Tokens: make([]CachedToken, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Tokens[i] = CachedToken{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  tok.Text,
		}
	}
	return payload
}

// payloadToTokens restores a token stream, rebinding spans to fileID.
func payloadToTokens(payload *TokenPayload, fileID source.FileID) []token.Token {
	tokens := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		tokens[i] = token.Token{
			Kind: token.Kind(ct.Kind),
			Span: source.Span{File: fileID, Start: ct.Start, End: ct.End},
			Text: ct.Text,
		}
	}
	return tokens
}

// TokenizeCached — Tokenize с дисковым кешом токенов.
// Кешируются только файлы, лексирование которых прошло без диагностик:
// диагностики в кеше не хранятся, и попадание не должно их терять.
func TokenizeCached(path string, cache *DiskCache, maxDiagnostics int) (*TokenizeResult, bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, false, err
	}
	file := fs.Get(fileID)

	key := CacheKey(file.Hash)
	var payload TokenPayload
	if hit, err := cache.Get(key, &payload); err == nil && hit {
		return &TokenizeResult{
			FileSet: fs,
			File:    file,
			Tokens:  payloadToTokens(&payload, fileID),
			Bag:     diag.NewBag(maxDiagnostics),
		}, true, nil
	}

	res := tokenizeFile(fs, fileID, maxDiagnostics)
	if res.Bag.Len() == 0 {
		if err := cache.Put(key, tokensToPayload(file, res.Tokens)); err != nil {
			return res, false, err
		}
	}
	return res, false, nil
}
