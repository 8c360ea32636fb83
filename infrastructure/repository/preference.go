// Package repository contém os repositórios de persistência da aplicação.
// O dashboard não persiste dados derivados; o único valor durável é a
// preferência de tema, guardada num arquivo JSON de chave/valor.
package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// PreferenceRepository abstrai o armazenamento durável de preferências
type PreferenceRepository interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
}

// FilePreferenceRepository implementa PreferenceRepository sobre um arquivo
// JSON simples. As escritas são serializadas por mutex.
type FilePreferenceRepository struct {
	mu   sync.Mutex
	path string
}

// NewFilePreferenceRepository cria um repositório apontando para `path`
func NewFilePreferenceRepository(path string) *FilePreferenceRepository {
	return &FilePreferenceRepository{path: path}
}

// Get lê uma preferência pelo nome. Arquivo inexistente não é erro: o
// chamador recebe found=false e aplica o padrão.
func (r *FilePreferenceRepository) Get(key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return "", false, err
	}

	value, found := values[key]
	return value, found, nil
}

// Set grava uma preferência pelo nome, preservando as demais
func (r *FilePreferenceRepository) Set(key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return err
	}

	values[key] = value

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return errors.Wrap(err, "criando diretório de preferências")
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializando preferências")
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return errors.Wrap(err, "gravando arquivo de preferências")
	}

	return nil
}

func (r *FilePreferenceRepository) read() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, errors.Wrap(err, "lendo arquivo de preferências")
	}

	if len(data) == 0 {
		return values, nil
	}

	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "interpretando arquivo de preferências")
	}

	return values, nil
}
