package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pitchside/internal/chat/handler/mocks"
	"pitchside/internal/common"
	"pitchside/internal/dbmysql"
)

func authedRequest(method, target string, body []byte, userID uint64) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(common.ContextWithUserID(req.Context(), userID))
}

func TestChatHandler_SendDirect(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(svc *mocks.MockConversationService)
		expectedStatus int
	}{
		{
			name: "successful send",
			body: `{"recipient_id":2,"body":"see you there","kind":"TEXT","correlation_id":"corr-1"}`,
			mockSetup: func(svc *mocks.MockConversationService) {
				svc.EXPECT().
					SendDirect(gomock.Any(), uint64(1), uint64(2), "see you there", common.KindText, "corr-1").
					Return(&dbmysql.Message{
						ID: 42, SenderID: 1, RecipientID: 2, Body: "see you there",
						Kind: common.KindText, CreatedAt: time.Now().UTC(), CorrelationID: "corr-1",
					}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{not json`,
			mockSetup:      func(svc *mocks.MockConversationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown recipient",
			body: `{"recipient_id":99,"body":"anyone?","kind":"TEXT"}`,
			mockSetup: func(svc *mocks.MockConversationService) {
				svc.EXPECT().
					SendDirect(gomock.Any(), uint64(1), uint64(99), "anyone?", common.KindText, "").
					Return(nil, fmt.Errorf("account 99: %w", common.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "validation error",
			body: `{"recipient_id":2,"body":"","kind":"TEXT"}`,
			mockSetup: func(svc *mocks.MockConversationService) {
				svc.EXPECT().
					SendDirect(gomock.Any(), uint64(1), uint64(2), "", common.KindText, "").
					Return(nil, fmt.Errorf("message body cannot be empty: %w", common.ErrInvalid))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockConversationService(ctrl)
			tt.mockSetup(svc)

			h := NewChatHandler(svc)
			req := authedRequest(http.MethodPost, "/api/v1/messages/direct", []byte(tt.body), 1)
			rec := httptest.NewRecorder()

			h.SendDirect(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusCreated {
				var msg dbmysql.Message
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
				assert.Equal(t, uint64(42), msg.ID)
				assert.Equal(t, "corr-1", msg.CorrelationID)
			}
		})
	}
}

func TestChatHandler_SendDirect_RequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConversationService(ctrl)

	h := NewChatHandler(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages/direct",
		bytes.NewReader([]byte(`{"recipient_id":2,"body":"hi"}`)))
	rec := httptest.NewRecorder()

	h.SendDirect(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatHandler_SendGroup_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConversationService(ctrl)

	svc.EXPECT().
		SendGroup(gomock.Any(), uint64(1), uint64(10), "hello team", common.KindText, "").
		Return(nil, fmt.Errorf("user 1 is not a member of group 10: %w", common.ErrForbidden))

	h := NewChatHandler(svc)
	req := authedRequest(http.MethodPost, "/api/v1/messages/group",
		[]byte(`{"group_id":10,"body":"hello team","kind":"TEXT"}`), 1)
	rec := httptest.NewRecorder()

	h.SendGroup(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestChatHandler_ListDirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConversationService(ctrl)

	svc.EXPECT().
		ListDirect(gomock.Any(), uint64(1), uint64(2), uint64(40), 20).
		Return([]*dbmysql.Message{
			{ID: 39, SenderID: 2, RecipientID: 1, Body: "older", Kind: common.KindText},
			{ID: 38, SenderID: 1, RecipientID: 2, Body: "oldest", Kind: common.KindText},
		}, nil)

	h := NewChatHandler(svc)

	router := mux.NewRouter()
	router.HandleFunc("/conversations/{peerID}/messages", h.ListDirect)

	req := authedRequest(http.MethodGet, "/conversations/2/messages?before=40&limit=20", nil, 1)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var messages []*dbmysql.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, uint64(39), messages[0].ID)
}

func TestChatHandler_ListDirect_InvalidPeerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConversationService(ctrl)

	h := NewChatHandler(svc)

	router := mux.NewRouter()
	router.HandleFunc("/conversations/{peerID}/messages", h.ListDirect)

	req := authedRequest(http.MethodGet, "/conversations/abc/messages", nil, 1)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_DeleteDirect(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"author delete succeeds", nil, http.StatusOK},
		{"foreign message", fmt.Errorf("message 42 belongs to another author: %w", common.ErrForbidden), http.StatusForbidden},
		{"unknown message", fmt.Errorf("message 42: %w", common.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockConversationService(ctrl)

			svc.EXPECT().DeleteDirect(gomock.Any(), uint64(42), uint64(1)).Return(tt.serviceErr)

			h := NewChatHandler(svc)

			router := mux.NewRouter()
			router.HandleFunc("/messages/direct/{messageID}", h.DeleteDirect).Methods(http.MethodDelete)

			req := authedRequest(http.MethodDelete, "/messages/direct/42", nil, 1)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

// The direct and group routes must hit different service methods; a group
// delete that drifted to the direct path would resolve the wrong record.
func TestChatHandler_DeleteGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConversationService(ctrl)

	svc.EXPECT().DeleteGroup(gomock.Any(), uint64(42), uint64(1)).Return(nil)

	h := NewChatHandler(svc)

	router := mux.NewRouter()
	router.HandleFunc("/messages/direct/{messageID}", h.DeleteDirect).Methods(http.MethodDelete)
	router.HandleFunc("/messages/group/{messageID}", h.DeleteGroup).Methods(http.MethodDelete)

	req := authedRequest(http.MethodDelete, "/messages/group/42", nil, 1)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
