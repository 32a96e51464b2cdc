package mockdb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskflow/internal/logging"
)

func TestClient_QueriesAreDisabled(t *testing.T) {
	db := New(logging.Discard())

	single := []struct {
		name   string
		result Result
	}{
		{"select single", db.From("tasks").Select("*").Eq("id", "task_1").Single()},
		{"select maybe single", db.From("profiles").Select().Eq("email", "a@b.co").MaybeSingle()},
		{"insert", db.From("projects").Insert(Row{"title": "x"}).Select().Single()},
		{"update", db.From("tasks").Update(Row{"title": "y"}).Eq("id", "task_1")},
		{"delete", db.From("subtasks").Delete().Eq("id", "subtask_1")},
	}
	for _, tt := range single {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, tt.result.Data)
			assert.ErrorIs(t, tt.result.Error, ErrDatabaseDisabled)
		})
	}

	lists := []struct {
		name   string
		result ListResult
	}{
		{"order", db.From("tasks").Select().Order("created_at", false)},
		{"limit", db.From("tasks").Select().Limit(10)},
	}
	for _, tt := range lists {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []Row{}, tt.result.Data)
			assert.ErrorIs(t, tt.result.Error, ErrDatabaseDisabled)
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	auth := New(logging.Discard()).Auth

	session, err := auth.SignInWithPassword("a@b.co", "secret1")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrDatabaseDisabled)

	session, err = auth.SignUp("a@b.co", "secret1")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrDatabaseDisabled)

	session, err = auth.GetSession()
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrDatabaseDisabled)

	user, err := auth.GetUser()
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrDatabaseDisabled)

	user, err = auth.UpdateUser(Row{"password": "x"})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrDatabaseDisabled)

	assert.NoError(t, auth.SignOut())
}
