package todo

import (
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/transport/http/response"
)

type ListTodosResponse struct {
	response.Success
	AllToDos []dto.TodoResponse `json:"allToDos"`
}

type CreateTodoResponse struct {
	response.Success
	NewTodo dto.TodoResponse `json:"newTodo"`
}

type GetTodoResponse struct {
	response.Success
	Todo dto.TodoResponse `json:"todo"`
}

type UpdateTodoResponse struct {
	response.Success
	Data struct {
		Todo dto.TodoResponse `json:"todo"`
	} `json:"data"`
}
