package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todoapi/infras/otel/mocks"
	todoMocks "todoapi/internal/domains/todo/mocks"
	"todoapi/internal/domains/todo/model"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/service"
	"todoapi/shared/constant"
	gDto "todoapi/shared/dto"
	"todoapi/shared/failure"
	gModel "todoapi/shared/model"
)

func newTodo(id int64, text string, done bool) model.Todo {
	return model.Todo{
		ID:        id,
		Text:      text,
		Done:      done,
		CreatedAt: gModel.Timestamp{Time: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func TestTodoService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantLen   int
		wantErr   bool
	}{
		{
			name: "oldest first with fixed limit",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{
						Limit:   constant.ListLimit,
						SortBy:  constant.FieldCreatedAt,
						SortDir: constant.SortDirAsc,
					}, gomock.Any()).
					Return([]model.Todo{newTodo(1, "a", false), newTodo(2, "b", true)}, nil)
			},
			wantLen: 2,
		},
		{
			name: "empty table",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "store error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.List(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
			} else {
				require.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	text := "buy milk"

	t.Run("returns stored todo", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), model.Todo{Text: text}).
			Return(newTodo(7, text, false), nil)

		result, err := svc.Create(context.Background(), dto.CreateTodoRequest{Text: &text})

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.ID)
		assert.Equal(t, text, result.Text)
		assert.False(t, result.Done)
		assert.Equal(t, "2024-01-01T12:00:00.000Z", result.CreatedAt)
	})

	t.Run("store error", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(model.Todo{}, errors.New("database error"))

		_, err := svc.Create(context.Background(), dto.CreateTodoRequest{Text: &text})

		assert.Error(t, err)
	})
}

func TestTodoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantCode  int
	}{
		{
			name: "found",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(1, "a", false), nil)
			},
		},
		{
			name: "not found",
			id:   999999,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store error",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, result.ID)
			}
		})
	}

	t.Run("not found message", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Todo{}, nil)

		_, err := svc.Get(context.Background(), 999999)

		assert.EqualError(t, err, dto.MessageNotFound)
	})
}

func TestTodoService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "text only",
			req:  dto.UpdateTodoRequest{Field: dto.UpdateFieldText, Text: "new"},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{model.FieldText: "new"}, gomock.Any()).
					Return(newTodo(1, "new", false), nil)
			},
		},
		{
			name: "done only",
			req:  dto.UpdateTodoRequest{Field: dto.UpdateFieldDone, Done: true},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{model.FieldDone: true}, gomock.Any()).
					Return(newTodo(1, "a", true), nil)
			},
		},
		{
			name:      "no field chosen",
			req:       dto.UpdateTodoRequest{},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "no row updated",
			req:  dto.UpdateTodoRequest{Field: dto.UpdateFieldDone, Done: true},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "store error",
			req:  dto.UpdateTodoRequest{Field: dto.UpdateFieldText, Text: "new"},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Todo{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Update(context.Background(), tt.req, 1)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), result.ID)
			}
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantMsg   string
	}{
		{
			name: "deleted",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "missing at check",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  dto.MessageNotFound,
		},
		{
			name: "gone before delete",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  dto.MessageDeleteFailed,
		},
		{
			name: "exist error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "delete error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), 1)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}
