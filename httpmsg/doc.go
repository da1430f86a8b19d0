// Package httpmsg
// Author: momentics <momentics@gmail.com>
//
// HTTP/1.x preamble codec for hioload-wire.
//
// ParseRequest tokenizes a raw request preamble (request line, header block and
// optional Basic credentials) into a Request value; ResponseBuilder assembles a
// response preamble with the code-dependent status-line variants. Neither side
// performs I/O or retains state between calls: the host owns sockets and
// buffers, this package only transforms bytes.
package httpmsg
