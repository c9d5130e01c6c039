package signature

// SignedMessage builds the exact byte sequence a webhook signature covers:
// timestamp bytes immediately followed by body bytes, no separator. The
// order matches the signing side; swapping the operands breaks
// interoperability. A fresh slice is returned, the inputs are not aliased.
func SignedMessage(timestamp, body []byte) []byte {
	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	return append(msg, body...)
}
