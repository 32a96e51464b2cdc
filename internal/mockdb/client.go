// Package mockdb is the remote database client with its
// backend switched off. It keeps the query builder and the auth facade so
// callers can be written against it, but every call resolves to
// ErrDatabaseDisabled.
package mockdb

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrDatabaseDisabled is the error carried by every disabled call.
var ErrDatabaseDisabled = errors.New("Database disabled")

// Row is one record of a table.
type Row map[string]any

// Result is the outcome of a single-row call. Data is always nil.
type Result struct {
	Data  Row
	Error error
}

// ListResult is the outcome of a multi-row call. Data is always empty.
type ListResult struct {
	Data  []Row
	Error error
}

// Client is the disabled database client.
type Client struct {
	Auth *Auth
	log  logrus.FieldLogger
}

// New returns a disabled client.
func New(log logrus.FieldLogger) *Client {
	return &Client{Auth: &Auth{log: log}, log: log}
}

// From starts a query on table.
func (c *Client) From(table string) *Table {
	return &Table{name: table, log: c.log.WithField("table", table)}
}

// Table is a query on one table.
type Table struct {
	name string
	log  logrus.FieldLogger
}

func (t *Table) Select(columns ...string) *SelectQuery {
	return &SelectQuery{table: t}
}

func (t *Table) Insert(rows ...Row) *InsertQuery {
	return &InsertQuery{table: t}
}

func (t *Table) Update(values Row) *FilterQuery {
	return &FilterQuery{table: t, op: "update"}
}

func (t *Table) Delete() *FilterQuery {
	return &FilterQuery{table: t, op: "delete"}
}

func (t *Table) single(op string) Result {
	t.log.WithField("op", op).Debug("database disabled")
	return Result{Error: ErrDatabaseDisabled}
}

func (t *Table) list(op string) ListResult {
	t.log.WithField("op", op).Debug("database disabled")
	return ListResult{Data: []Row{}, Error: ErrDatabaseDisabled}
}

// SelectQuery is a pending select.
type SelectQuery struct {
	table *Table
}

func (q *SelectQuery) Eq(column string, value any) *RowQuery {
	return &RowQuery{table: q.table}
}

func (q *SelectQuery) Order(column string, ascending bool) ListResult {
	return q.table.list("select")
}

func (q *SelectQuery) Limit(n int) ListResult {
	return q.table.list("select")
}

// RowQuery is a select narrowed to one row.
type RowQuery struct {
	table *Table
}

func (q *RowQuery) Single() Result {
	return q.table.single("select")
}

func (q *RowQuery) MaybeSingle() Result {
	return q.table.single("select")
}

// InsertQuery is a pending insert.
type InsertQuery struct {
	table *Table
}

// Select returns the inserted row.
func (q *InsertQuery) Select(columns ...string) *RowQuery {
	return &RowQuery{table: q.table}
}

// FilterQuery is a pending update or delete waiting for its filter.
type FilterQuery struct {
	table *Table
	op    string
}

func (q *FilterQuery) Eq(column string, value any) Result {
	return q.table.single(q.op)
}

// AuthUser is the remote identity shape. The disabled client never returns
// one.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthSession is the remote session shape.
type AuthSession struct {
	AccessToken string    `json:"access_token"`
	User        *AuthUser `json:"user"`
}

// Auth is the disabled auth facade.
type Auth struct {
	log logrus.FieldLogger
}

func (a *Auth) disabled(op string) error {
	a.log.WithField("op", op).Debug("database disabled")
	return ErrDatabaseDisabled
}

func (a *Auth) SignInWithPassword(email, password string) (*AuthSession, error) {
	return nil, a.disabled("sign in")
}

func (a *Auth) SignUp(email, password string) (*AuthSession, error) {
	return nil, a.disabled("sign up")
}

// SignOut always succeeds.
func (a *Auth) SignOut() error {
	return nil
}

func (a *Auth) GetUser() (*AuthUser, error) {
	return nil, a.disabled("get user")
}

func (a *Auth) GetSession() (*AuthSession, error) {
	return nil, a.disabled("get session")
}

func (a *Auth) UpdateUser(attributes Row) (*AuthUser, error) {
	return nil, a.disabled("update user")
}
