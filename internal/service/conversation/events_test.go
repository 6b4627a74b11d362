package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

func TestParseReplyID(t *testing.T) {
	tests := []struct {
		name    string
		replyID string
		want    ReplyEvent
		wantErr bool
	}{
		{
			name:    "worker",
			replyID: "worker_5",
			want:    ReplyEvent{Kind: ReplyWorker, WorkerID: 5},
		},
		{
			name:    "service",
			replyID: "service_12",
			want:    ReplyEvent{Kind: ReplyService, ServiceID: 12},
		},
		{
			name:    "date",
			replyID: "date_2026-03-05",
			want:    ReplyEvent{Kind: ReplyDate, Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:    "time",
			replyID: "time_14:30",
			want:    ReplyEvent{Kind: ReplyTime, Time: "14:30"},
		},
		{
			name:    "second page sentinel before time prefix",
			replyID: "time_page_2",
			want:    ReplyEvent{Kind: ReplyTimePage, Page: 2},
		},
		{
			name:    "cancel",
			replyID: "cancel_77",
			want:    ReplyEvent{Kind: ReplyCancel, AppointmentID: 77},
		},
		{
			name:    "confirm yes",
			replyID: "confirm_yes",
			want:    ReplyEvent{Kind: ReplyConfirmYes},
		},
		{
			name:    "confirm no",
			replyID: "confirm_no",
			want:    ReplyEvent{Kind: ReplyConfirmNo},
		},
		{name: "unknown prefix", replyID: "foo_1", wantErr: true},
		{name: "worker with garbage id", replyID: "worker_abc", wantErr: true},
		{name: "date with bad payload", replyID: "date_05.03.2026", wantErr: true},
		{name: "time with bad payload", replyID: "time_25:99", wantErr: true},
		{name: "cancel with garbage id", replyID: "cancel_x", wantErr: true},
		{name: "empty", replyID: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReplyID(tt.replyID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidReply)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplyKindAllowedAtStep(t *testing.T) {
	tests := []struct {
		name string
		kind ReplyKind
		step domain.ConversationStep
		want bool
	}{
		{name: "worker at awaiting worker", kind: ReplyWorker, step: domain.StepAwaitingWorker, want: true},
		{name: "worker at awaiting date", kind: ReplyWorker, step: domain.StepAwaitingDate, want: false},
		{name: "service at awaiting service", kind: ReplyService, step: domain.StepAwaitingService, want: true},
		{name: "date at awaiting date", kind: ReplyDate, step: domain.StepAwaitingDate, want: true},
		{name: "time at awaiting time", kind: ReplyTime, step: domain.StepAwaitingTime, want: true},
		{name: "time page at awaiting time", kind: ReplyTimePage, step: domain.StepAwaitingTime, want: true},
		{name: "time at awaiting date", kind: ReplyTime, step: domain.StepAwaitingDate, want: false},
		{name: "confirm yes at confirming", kind: ReplyConfirmYes, step: domain.StepConfirming, want: true},
		{name: "confirm no at confirming", kind: ReplyConfirmNo, step: domain.StepConfirming, want: true},
		{name: "confirm yes at awaiting worker", kind: ReplyConfirmYes, step: domain.StepAwaitingWorker, want: false},
		{name: "cancel at cancelling", kind: ReplyCancel, step: domain.StepCancellingAppointment, want: true},
		{name: "cancel at confirming", kind: ReplyCancel, step: domain.StepConfirming, want: false},
		{name: "unknown kind", kind: ReplyUnknown, step: domain.StepAwaitingWorker, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.AllowedAtStep(tt.step))
		})
	}
}

func TestReplyIDBuildersRoundTrip(t *testing.T) {
	event, err := ParseReplyID(WorkerReplyID(3))
	require.NoError(t, err)
	assert.Equal(t, ReplyEvent{Kind: ReplyWorker, WorkerID: 3}, event)

	event, err = ParseReplyID(ServiceReplyID(8))
	require.NoError(t, err)
	assert.Equal(t, ReplyEvent{Kind: ReplyService, ServiceID: 8}, event)

	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	event, err = ParseReplyID(DateReplyID(date))
	require.NoError(t, err)
	assert.Equal(t, ReplyEvent{Kind: ReplyDate, Date: date}, event)

	event, err = ParseReplyID(TimeReplyID(types.TimeString("09:30")))
	require.NoError(t, err)
	assert.Equal(t, ReplyEvent{Kind: ReplyTime, Time: types.TimeString("09:30")}, event)

	event, err = ParseReplyID(CancelReplyID(15))
	require.NoError(t, err)
	assert.Equal(t, ReplyEvent{Kind: ReplyCancel, AppointmentID: 15}, event)
}
