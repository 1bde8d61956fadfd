package seed

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/domain/user"
)

// ExportUserNames writes all user names to a single-column CSV at path,
// feeding the name pool the synthetic staffing generators draw from.
func ExportUserNames(ctx context.Context, users user.Repository, path string, logger logrus.FieldLogger) error {
	names, err := users.Names(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write([]string{"Name"})
	for _, name := range names {
		if writeErr != nil {
			break
		}
		writeErr = w.Write([]string{name})
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return errors.Wrapf(writeErr, "write %s", path)
	}

	logger.Infof("Exported %d users to %s", len(names), path)
	return nil
}
