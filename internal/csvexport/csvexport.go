// Package csvexport reads and writes the client CSV format.
//
// Exported files have an unquoted header row followed by one row per client
// with every field wrapped in double quotes. Embedded quotes are doubled as
// in RFC 4180. Rows are separated by "\n" with no trailing newline.
package csvexport

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
)

const (
	// Filename is the attachment name offered for downloads.
	Filename = "clientes.csv"

	// ContentType is the media type of exported files.
	ContentType = "text/csv;charset=utf-8"
)

// Header lists the exported columns in order.
var Header = []string{"Nome", "Email", "Telefone", "Empresa", "Endereço", "Status", "Documento"}

func fields(c domain.Client) []string {
	return []string{c.Name, c.Email, c.Phone, c.Company, c.Address, string(c.Status), c.Document}
}

// Write serializes clients to w in the given order.
func Write(w io.Writer, clients []domain.Client) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(Header, ",")); err != nil {
		return err
	}
	for _, c := range clients {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		for i, f := range fields(c) {
			if i > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(quote(f)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Encode returns the CSV document for clients.
func Encode(clients []domain.Client) []byte {
	var buf bytes.Buffer
	_ = Write(&buf, clients) // bytes.Buffer writes cannot fail
	return buf.Bytes()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
