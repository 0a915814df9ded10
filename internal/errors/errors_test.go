package errors_test

import (
	"testing"

	apperrors "github.com/jrsteele09/hostel-admin/internal/errors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSentinelsSurviveWrapping(t *testing.T) {
	sentinels := []error{
		apperrors.ErrInvalidCredentials,
		apperrors.ErrNotAuthenticated,
		apperrors.ErrSessionExpired,
		apperrors.ErrWrongActorKind,
		apperrors.ErrCsrfUnavailable,
		apperrors.ErrStorageUnavailable,
		apperrors.ErrNotFound,
		apperrors.ErrInvalidRequest,
	}
	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			err := errors.Wrapf(errors.Wrap(sentinel, "[Service.Login]"), "[app.%s]", "run")
			require.ErrorIs(t, err, sentinel)
			require.Equal(t, sentinel, errors.Cause(err))
			for _, other := range sentinels {
				if other != sentinel {
					require.NotErrorIs(t, err, other)
				}
			}
		})
	}
}
