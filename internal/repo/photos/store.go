// Package photos хранит бинарные файлы фотографий: в каталоге на диске, в памяти или в S3-бакете.
package photos

import (
	"context"
	"io"
	"time"
)

// Store — хранилище файлов фотографий, адресуемых по имени.
type Store interface {
	// Put записывает файл целиком, перезаписывая существующий.
	Put(ctx context.Context, name string, r io.Reader) error
	// Open открывает файл на чтение; models.ErrNotFound, если его нет.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Delete удаляет файл; отсутствие файла ошибкой не считается.
	Delete(ctx context.Context, name string) error
}

// Entry — сведения о файле для сборщика сирот.
type Entry struct {
	Name    string
	ModTime time.Time
}

// Lister реализуют бэкенды, умеющие перечислять свои файлы.
type Lister interface {
	List(ctx context.Context) ([]Entry, error)
}
