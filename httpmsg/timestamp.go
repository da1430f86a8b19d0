// File: httpmsg/timestamp.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package httpmsg

import "time"

// httpDateLayout is the IMF-fixdate layout used by the Date header.
const httpDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// TimeStamp renders t in local time using the asctime layout, e.g.
// "Mon Jan  2 15:04:05 2006". Intended for host log lines.
func TimeStamp(t time.Time) string {
	return t.Local().Format(time.ANSIC)
}

// HTTPDate renders t for a Date or Last-Modified header.
func HTTPDate(t time.Time) string {
	return t.UTC().Format(httpDateLayout)
}
