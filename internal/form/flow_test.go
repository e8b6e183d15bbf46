package form

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/bassista/tourdesk/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	calls []string
	err   error
}

func (r *recordingSaver) save(_ context.Context, id string, u remote.User) error {
	method := "POST"
	if id != "" {
		method = "PUT"
	}
	r.calls = append(r.calls, method)
	return r.err
}

type countingOwner struct{ invalidations int }

func (o *countingOwner) InvalidateCurrent() { o.invalidations++ }

func validUser() remote.User {
	return remote.User{Name: "Asha Rao", Email: "asha@example.com", Mobile: "9876543210"}
}

func TestSubmit_ShortMobileRejectedWithoutRequest(t *testing.T) {
	saver := &recordingSaver{}
	owner := &countingOwner{}
	flow := NewFlow("users", nil, saver.save, owner)

	u := validUser()
	u.Mobile = "12345"
	flow.Open("7", u)

	err := flow.Submit(context.Background())
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "mobile", verr.Field)
	assert.Equal(t, "mobile must be exactly 10 digits", verr.Message)

	assert.Empty(t, saver.calls)
	assert.Equal(t, 0, owner.invalidations)
	state := flow.State()
	assert.True(t, state.Open)
	assert.Equal(t, "mobile must be exactly 10 digits", state.Message)
}

func TestSubmit_ValidEditIssuesOnePut(t *testing.T) {
	saver := &recordingSaver{}
	owner := &countingOwner{}
	flow := NewFlow("users", nil, saver.save, owner)

	flow.Open("7", validUser())
	require.NoError(t, flow.Submit(context.Background()))

	assert.Equal(t, []string{"PUT"}, saver.calls)
	assert.Equal(t, 1, owner.invalidations)
	state := flow.State()
	assert.False(t, state.Open)
	assert.Empty(t, state.Draft.Name)
}

func TestSubmit_ValidCreateIssuesOnePost(t *testing.T) {
	saver := &recordingSaver{}
	flow := NewFlow("users", nil, saver.save, &countingOwner{})

	flow.Open("", remote.User{})
	require.NoError(t, flow.Edit(func(u *remote.User) {
		*u = validUser()
	}))
	assert.Equal(t, "create", flow.State().Mode)
	require.NoError(t, flow.Submit(context.Background()))
	assert.Equal(t, []string{"POST"}, saver.calls)
}

func TestSubmit_DuplicateKeepsFormOpen(t *testing.T) {
	saver := &recordingSaver{err: &remote.APIError{
		Status:  http.StatusConflict,
		Message: "User with this mobile already exists",
	}}
	owner := &countingOwner{}
	flow := NewFlow("users", nil, saver.save, owner)

	flow.Open("", validUser())
	err := flow.Submit(context.Background())
	assert.ErrorIs(t, err, remote.ErrDuplicate)

	state := flow.State()
	assert.True(t, state.Open)
	assert.Equal(t, "User with this mobile already exists", state.Message)
	assert.Equal(t, "Asha Rao", state.Draft.Name)
	assert.Equal(t, 0, owner.invalidations)
}

func TestSubmit_OtherHTTPErrorPassesMessageVerbatim(t *testing.T) {
	saver := &recordingSaver{err: &remote.APIError{Status: http.StatusBadGateway, Message: "upstream exploded"}}
	flow := NewFlow("users", nil, saver.save, nil)

	flow.Open("3", validUser())
	require.Error(t, flow.Submit(context.Background()))
	assert.Equal(t, "upstream exploded", flow.State().Message)
	assert.True(t, flow.State().Open)
}

func TestSubmit_FirstFailingFieldOnly(t *testing.T) {
	flow := NewFlow("users", nil, (&recordingSaver{}).save, nil)
	flow.Open("", remote.User{Email: "no-at-sign", Mobile: "1"})

	err := flow.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())
}

func TestSubmit_EmailNeedsAtSign(t *testing.T) {
	flow := NewFlow("users", nil, (&recordingSaver{}).save, nil)
	u := validUser()
	u.Email = "asha.example.com"
	flow.Open("", u)

	err := flow.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address", err.Error())
}

func TestSubmit_NotOpen(t *testing.T) {
	flow := NewFlow("users", nil, (&recordingSaver{}).save, nil)
	assert.ErrorIs(t, flow.Submit(context.Background()), ErrNotOpen)
	assert.ErrorIs(t, flow.Edit(func(*remote.User) {}), ErrNotOpen)
}

func TestCancel_ClearsDraft(t *testing.T) {
	flow := NewFlow("users", nil, (&recordingSaver{}).save, nil)
	flow.Open("9", validUser())
	flow.Cancel()

	state := flow.State()
	assert.False(t, state.Open)
	assert.Empty(t, state.ID)
	assert.Empty(t, state.Mode)
}

func TestSubmit_SuccessKeepsFormOpenedWhileSaving(t *testing.T) {
	var flow *Flow[remote.User]
	other := validUser()
	other.Name = "Ravi Kumar"
	flow = NewFlow("users", nil, func(_ context.Context, _ string, _ remote.User) error {
		flow.Open("8", other)
		return nil
	}, &countingOwner{})

	flow.Open("3", validUser())
	require.NoError(t, flow.Submit(context.Background()))

	st := flow.State()
	assert.True(t, st.Open)
	assert.Equal(t, "8", st.ID)
	assert.Equal(t, "Ravi Kumar", st.Draft.Name)
}

func TestSubmit_FailureMessageStaysOnItsOwnForm(t *testing.T) {
	var flow *Flow[remote.User]
	flow = NewFlow("users", nil, func(_ context.Context, _ string, _ remote.User) error {
		flow.Open("", validUser())
		return &remote.APIError{Status: http.StatusConflict, Message: "User with this mobile already exists"}
	}, nil)

	flow.Open("3", validUser())
	require.Error(t, flow.Submit(context.Background()))

	st := flow.State()
	assert.True(t, st.Open)
	assert.Equal(t, "create", st.Mode)
	assert.Empty(t, st.Message)
}
