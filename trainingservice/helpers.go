package trainingservice

import (
	"bytes"
	"fmt"
	"io"
)

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

func httpStatusError(status int) error {
	return fmt.Errorf("receiver returned status %d", status)
}
