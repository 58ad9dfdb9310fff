package device_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmitrijs2005/rockside/internal/client/device"
	"github.com/dmitrijs2005/rockside/internal/client/device/mocks"
	"github.com/dmitrijs2005/rockside/internal/client/models"
)

var nairobi = models.Location{Lat: -1.2921, Lon: 36.8219}

func TestTerminalLocator_PromptGranted(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := mocks.NewMockPrompter(ctrl)
	prompter.EXPECT().Ask(gomock.Any()).Return("Y", nil).Times(1)

	l := device.NewTerminalLocator(device.PolicyPrompt, prompter, nairobi)
	ctx := context.Background()

	p, err := l.RequestPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, device.PermissionGranted, p)

	// the answer is remembered
	p, err = l.RequestPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, device.PermissionGranted, p)

	pos, err := l.CurrentPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, nairobi, pos)
}

func TestTerminalLocator_PromptDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := mocks.NewMockPrompter(ctrl)
	prompter.EXPECT().Ask(gomock.Any()).Return("", nil)

	l := device.NewTerminalLocator(device.PolicyPrompt, prompter, nairobi)

	p, err := l.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, device.PermissionDenied, p)

	_, err = l.CurrentPosition(context.Background())
	require.ErrorIs(t, err, device.ErrPermissionDenied)
}

func TestTerminalLocator_FixedPolicyNeverPrompts(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := mocks.NewMockPrompter(ctrl)

	for _, policy := range []device.Permission{device.PermissionGranted, device.PermissionDenied} {
		l := device.NewTerminalLocator(string(policy), prompter, nairobi)
		p, err := l.RequestPermission(context.Background())
		require.NoError(t, err)
		assert.Equal(t, policy, p)
	}
}

func TestTerminalLocator_PositionBeforePermission(t *testing.T) {
	l := device.NewTerminalLocator(device.PolicyPrompt, nil, nairobi)
	_, err := l.CurrentPosition(context.Background())
	require.ErrorIs(t, err, device.ErrPermissionDenied)
}

func TestTerminalLocator_PromptErrorLeavesUndetermined(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := mocks.NewMockPrompter(ctrl)
	boom := errors.New("stdin closed")
	prompter.EXPECT().Ask(gomock.Any()).Return("", boom)

	l := device.NewTerminalLocator(device.PolicyPrompt, prompter, nairobi)
	p, err := l.RequestPermission(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, device.PermissionUndetermined, p)
}

func TestTerminalLocator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := device.NewTerminalLocator(string(device.PermissionGranted), nil, nairobi)
	_, err := l.RequestPermission(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = l.CurrentPosition(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
