// Package inventoryproto описывает пути и имена полей HTTP API инвентаря, общие для сервера и клиента.
package inventoryproto

import "fmt"

// Пути REST API.
const (
	PathRegister  = "/register"
	PathInventory = "/inventory"
	PathItem      = "/inventory/{id}"
	PathItemPhoto = "/inventory/{id}/photo"
	PathSearch    = "/search"
	PathHealth    = "/health"
	PathAdminGC   = "/admin/gc"

	itemPathFormat  = "/inventory/%s"
	photoPathFormat = "/inventory/%s/photo"
)

// Имена полей форм и query-параметров.
const (
	FieldInventoryName = "inventory_name"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPhoto         = "photo"
	FieldID            = "id"
	// POST /search и GET /search читают флаг фото из разных полей.
	FieldHasPhoto     = "has_photo"
	FieldIncludePhoto = "includePhoto"
)

// PhotoContentType — тип, с которым отдаются все фотографии.
const PhotoContentType = "image/jpeg"

// DeletedMessage — текст ответа на успешное удаление.
const DeletedMessage = "Deleted"

func ItemPath(id string) string {
	return fmt.Sprintf(itemPathFormat, id)
}

// PhotoPath — ссылка на фото записи, которая попадает в поле photo.
func PhotoPath(id string) string {
	return fmt.Sprintf(photoPathFormat, id)
}
