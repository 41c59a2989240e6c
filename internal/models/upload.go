package models

import "io"

// PhotoUpload описывает загруженный клиентом файл фотографии.
type PhotoUpload struct {
	Reader   io.Reader
	FileName string
}

// CreateRequest — входные данные для регистрации новой записи.
type CreateRequest struct {
	Name        string
	Description string
	Photo       *PhotoUpload
}
