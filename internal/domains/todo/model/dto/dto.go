package dto

import (
	"bytes"
	"encoding/json"

	"todoapi/internal/domains/todo/model"
	"todoapi/shared/constant"
	"todoapi/shared/failure"
	"todoapi/shared/timezone"
	"todoapi/shared/validator"
)

const (
	MessageCreateInvalid = "You must provide some text for your todo."
	MessageUpdateInvalid = "You must provide some text or a done value for your todo."
	MessageNotFound      = "Could not find a todo with that id."
	MessageDeleteFailed  = "Something went wrong with deletion."
)

// TodoBody is a request body as sent. Fields stay raw so that a field of the wrong JSON type
// is treated as absent instead of failing the whole decode.
type TodoBody struct {
	Text json.RawMessage `json:"text"`
	Done json.RawMessage `json:"done"`
}

// TextValue returns text when it was sent as a JSON string.
func (b TodoBody) TextValue() (string, bool) {
	raw := bytes.TrimSpace(b.Text)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", false
	}

	return text, true
}

// DoneValue returns done when it was sent as a JSON boolean.
func (b TodoBody) DoneValue() (bool, bool) {
	switch string(bytes.TrimSpace(b.Done)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

type CreateTodoRequest struct {
	Text *string `json:"text" validate:"required"`
}

// NewCreateTodoRequest accepts any string text, including the empty string.
func NewCreateTodoRequest(body TodoBody) (CreateTodoRequest, error) {
	req := CreateTodoRequest{}

	if text, ok := body.TextValue(); ok {
		req.Text = &text
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return req, failure.BadRequestFromString(MessageCreateInvalid) //nolint:wrapcheck
	}

	return req, nil
}

func (c *CreateTodoRequest) ToModel() model.Todo {
	return model.Todo{
		Text: *c.Text,
	}
}

type UpdateField string

const (
	UpdateFieldText UpdateField = model.FieldText
	UpdateFieldDone UpdateField = model.FieldDone
)

// UpdateTodoRequest changes exactly one column.
type UpdateTodoRequest struct {
	Field UpdateField `json:"field" validate:"required,oneof=text done"`
	Text  string      `json:"text"`
	Done  bool        `json:"done"`
}

// NewUpdateTodoRequest picks the column to change: a non-empty text string wins, otherwise a
// boolean done. A body carrying both only updates text.
func NewUpdateTodoRequest(body TodoBody) (UpdateTodoRequest, error) {
	req := UpdateTodoRequest{}

	if text, ok := body.TextValue(); ok && text != "" {
		req.Field = UpdateFieldText
		req.Text = text
	} else if done, ok := body.DoneValue(); ok {
		req.Field = UpdateFieldDone
		req.Done = done
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return req, failure.BadRequestFromString(MessageUpdateInvalid) //nolint:wrapcheck
	}

	return req, nil
}

// ToColumns returns the single column/value pair to write.
func (u *UpdateTodoRequest) ToColumns() map[string]any {
	switch u.Field {
	case UpdateFieldText:
		return map[string]any{model.FieldText: u.Text}
	case UpdateFieldDone:
		return map[string]any{model.FieldDone: u.Done}
	default:
		return map[string]any{}
	}
}

type TodoResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"createdAt"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Text = model.Text
	r.Done = model.Done
	r.CreatedAt = timezone.Format(model.CreatedAt.Time, constant.DateFormat)
}

// FromModels never returns nil so an empty list encodes as [].
func FromModels(models []model.Todo) []TodoResponse {
	res := make([]TodoResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
