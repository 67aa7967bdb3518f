package model

import "todoapi/shared/model"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID        = "id"
	FieldText      = "text"
	FieldDone      = "done"
	FieldCreatedAt = "created_at"
)

// Todo is one row of the todos table. ID and CreatedAt are assigned by the store and Done
// defaults to false there, so only Text is written on insert.
type Todo struct {
	ID        int64           `db:"id"         insert:"-"`
	Text      string          `db:"text"`
	Done      bool            `db:"done"       insert:"-"`
	CreatedAt model.Timestamp `db:"created_at" insert:"-"`
}
