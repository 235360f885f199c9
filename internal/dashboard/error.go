package dashboard

import "errors"

var ErrRefreshFailed = errors.New("dashboard refresh failed")
