package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meepleworks/reviews-api/internal/errs"
	"github.com/meepleworks/reviews-api/internal/model"
)

type fakeUserStore struct {
	list          func(ctx context.Context) ([]model.User, error)
	getByUsername func(ctx context.Context, username string) (*model.User, error)
}

func (f *fakeUserStore) List(ctx context.Context) ([]model.User, error) {
	return f.list(ctx)
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return f.getByUsername(ctx, username)
}

func newUsersEcho(store UserStore) *echo.Echo {
	e := newEcho()
	h := NewUserHandler(nil, store)
	e.GET("/api/users", h.GetUsers)
	e.GET("/api/users/:username", h.GetUserByUsername)
	return e
}

func TestGetUsers(t *testing.T) {
	store := &fakeUserStore{
		list: func(ctx context.Context) ([]model.User, error) {
			return []model.User{
				{
					Username:  "mallionaire",
					Name:      "haz",
					AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
				},
				{
					Username:  "philippaclaire9",
					Name:      "philippa",
					AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4",
				},
			}, nil
		},
	}

	rec := doRequest(t, newUsersEcho(store), http.MethodGet, "/api/users", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Users []model.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Users, 2)
	for _, u := range body.Users {
		assert.NotEmpty(t, u.Username)
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.AvatarURL)
	}
}

func TestGetUserByUsername(t *testing.T) {
	store := &fakeUserStore{
		getByUsername: func(ctx context.Context, username string) (*model.User, error) {
			require.Equal(t, "mallionaire", username)
			return &model.User{
				Username:  "mallionaire",
				Name:      "haz",
				AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
			}, nil
		},
	}

	rec := doRequest(t, newUsersEcho(store), http.MethodGet, "/api/users/mallionaire", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":{
		"username":"mallionaire",
		"name":"haz",
		"avatar_url":"https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"
	}}`, rec.Body.String())
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	store := &fakeUserStore{
		getByUsername: func(ctx context.Context, username string) (*model.User, error) {
			return nil, errs.NewNotFound("Resource not found")
		},
	}

	rec := doRequest(t, newUsersEcho(store), http.MethodGet, "/api/users/nobody-here", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"Resource not found"}`, rec.Body.String())
}
