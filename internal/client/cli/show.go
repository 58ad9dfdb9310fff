package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/rockside/internal/client/services"
)

// PrintStored writes both stored records to w with the password masked.
func PrintStored(ctx context.Context, w io.Writer, creds services.CredentialStore, form services.QuestionnaireStore) error {
	auth, err := creds.Load(ctx)
	if err != nil {
		return err
	}
	rec, err := form.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Account:")
	if auth == nil {
		fmt.Fprintln(w, "  (none)")
	} else {
		fmt.Fprintf(w, "  email:    %s\n", auth.Email)
		fmt.Fprintf(w, "  password: %s\n", strings.Repeat("*", len([]rune(auth.Password))))
	}

	fmt.Fprintln(w, "Questionnaire:")
	if rec == nil {
		fmt.Fprintln(w, "  (none)")
		return nil
	}

	photo := "(none)"
	if rec.Photo != nil {
		photo = *rec.Photo
	}
	location := "(none)"
	if rec.Location != nil {
		location = rec.Location.String()
	}
	fmt.Fprintf(w, "  date:     %s\n", rec.Date)
	fmt.Fprintf(w, "  consent:  %s\n", yesNo(rec.Consent))
	fmt.Fprintf(w, "  name:     %s\n", rec.Name)
	fmt.Fprintf(w, "  photo:    %s\n", photo)
	fmt.Fprintf(w, "  location: %s\n", location)
	fmt.Fprintf(w, "  comments: %s\n", rec.Comments)
	return nil
}
