package services

import (
	"errors"
	"testing"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestSubmitContactStoresAndNotifies(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewContactService(db, mailer, "admin@kwezia.app")

	message, err := svc.Submit("Jane", "jane@example.com", "Hello there")
	require.NoError(t, err)
	assert.False(t, message.IsRead)

	// Admin notification plus sender confirmation.
	assert.Equal(t, []string{"admin@kwezia.app", "jane@example.com"}, mailer.sent)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitContactMailFailureStillPersists(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewContactService(db, mailer, "admin@kwezia.app")

	_, err := svc.Submit("Jane", "jane@example.com", "Hello there")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitContactValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, nil, "")

	cases := []struct {
		name    string
		from    string
		email   string
		message string
		wantErr string
	}{
		{"missing name", "", "jane@example.com", "hi", "name is required"},
		{"missing email", "Jane", "", "hi", "email is required"},
		{"bad email", "Jane", "not-an-email", "hi", "invalid email format"},
		{"missing message", "Jane", "jane@example.com", "", "message is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(tc.from, tc.email, tc.message)
			assert.EqualError(t, err, tc.wantErr)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContactReadLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, nil, "")

	message, err := svc.Submit("Jane", "jane@example.com", "Hello")
	require.NoError(t, err)

	unread, err := svc.GetUnread()
	require.NoError(t, err)
	assert.Len(t, unread, 1)

	count, err := svc.UnreadCount()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// Fetching does not mark read.
	_, err = svc.GetByID(message.ID)
	require.NoError(t, err)
	count, err = svc.UnreadCount()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	updated, err := svc.SetRead(message.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)

	count, err = svc.UnreadCount()
	require.NoError(t, err)
	assert.Zero(t, count)

	updated, err = svc.SetRead(message.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsRead)
}

func TestContactDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, nil, "")

	message, err := svc.Submit("Jane", "jane@example.com", "Hello")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(message.ID))
	assert.ErrorIs(t, svc.Delete(message.ID), ErrContactNotFound)
}
