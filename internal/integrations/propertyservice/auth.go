package propertyservice

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"
)

// TokenProvider источник bearer-токена для исходящих запросов.
//
// Токен передаётся явной зависимостью, а не читается из глобального состояния:
// так клиент тестируется без окружения и не зависит от способа хранения токена.
type TokenProvider interface {
	Token() (string, error)
}

// StaticTokenProvider провайдер с фиксированным токеном из конфигурации
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider создает провайдер со статичным токеном
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// Token возвращает токен
func (p *StaticTokenProvider) Token() (string, error) {
	return p.token, nil
}

// FileTokenProvider читает токен из файла с кэшированием.
// Файл перечитывается не чаще раза в refreshEvery, что позволяет ротировать
// токен без рестарта сервиса.
type FileTokenProvider struct {
	path         string
	refreshEvery time.Duration

	mu       sync.Mutex
	cached   string
	readAt   time.Time
}

// NewFileTokenProvider создает провайдер, читающий токен из файла
func NewFileTokenProvider(path string, refreshEvery time.Duration) *FileTokenProvider {
	if refreshEvery <= 0 {
		refreshEvery = time.Minute
	}
	return &FileTokenProvider{
		path:         path,
		refreshEvery: refreshEvery,
	}
}

// Token возвращает токен из файла (с учётом кэша)
func (p *FileTokenProvider) Token() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" && time.Since(p.readAt) < p.refreshEvery {
		return p.cached, nil
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		// Если файл временно недоступен, отдаем последний прочитанный токен
		if p.cached != "" {
			return p.cached, nil
		}
		return "", fmt.Errorf("token file %s: %w", p.path, err)
	}

	p.cached = string(bytes.TrimSpace(data))
	p.readAt = time.Now()
	return p.cached, nil
}
