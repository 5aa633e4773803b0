// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// Alert reports the error to the error tracking (if configured) and logs it.
// args are slog style key value pairs, e.g. "reportID", id. They become sentry tags.
func Alert(message string, err error, args ...any) {
	if err == nil {
		err = errors.New(message)
	}

	var evID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags(args))
		evID = sentry.CurrentHub().CaptureException(errors.Wrap(err, message))
	})
	slog.Error(message, append([]any{"err", err, "eventID", evID}, args...)...)
}

func RecoverAndAlert(message string, err error) {
	evID := sentry.CurrentHub().Recover(err)
	slog.Error(message, "err", err, "recovered", true, "eventID", evID)
}

// tags turns key value pairs into sentry tags. A trailing key without value is dropped.
func tags(args []any) map[string]string {
	res := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		res[fmt.Sprint(args[i])] = fmt.Sprint(args[i+1])
	}
	return res
}
