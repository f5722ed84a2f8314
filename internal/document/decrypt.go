// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	api.DisableConfigDir()
}

// errPasswordRequired reports a document that cannot be opened with the
// empty user password.
var errPasswordRequired = errors.New("document requires a password")

// unsupportedEncryption reports whether err is the PDF reader refusing a
// security handler it does not implement, such as AES-256 (V5/R6).
func unsupportedEncryption(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "encryption")
}

// decrypt rewrites the encrypted PDF in rs without its security handler,
// authenticating with the empty user password. It returns
// errPasswordRequired when a real password is needed.
func decrypt(rs io.ReadSeeker) ([]byte, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	conf.UserPW = ""
	conf.OwnerPW = ""

	var buf bytes.Buffer
	if err := api.Decrypt(rs, &buf, conf); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "password") {
			return nil, errPasswordRequired
		}
		return nil, err
	}
	return buf.Bytes(), nil
}
