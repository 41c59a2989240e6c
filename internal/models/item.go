package models

// Item — запись инвентаря в том виде, в котором она лежит в JSON-документе.
type Item struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Photo          *string `json:"photo"`
	StoredFileName string  `json:"storedFileName,omitempty"`
}

// ItemView — публичная проекция Item. Имени файла на диске в ней нет.
type ItemView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Photo       *string `json:"photo"`
}

// Document — корневая структура JSON-документа коллекции.
type Document struct {
	Items []Item `json:"items"`
}

// SearchResult отдаётся эндпоинтами /search.
type SearchResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HasPhoto сообщает, привязан ли к записи файл фотографии.
func (i Item) HasPhoto() bool {
	return i.StoredFileName != ""
}

// View возвращает публичную проекцию записи.
func (i Item) View() ItemView {
	v := ItemView{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
	}
	if i.Photo != nil {
		ref := *i.Photo
		v.Photo = &ref
	}
	return v
}

// Clone возвращает копию записи, чтобы не делиться указателем на ссылку фото.
func (i Item) Clone() Item {
	out := i
	if i.Photo != nil {
		ref := *i.Photo
		out.Photo = &ref
	}
	return out
}
