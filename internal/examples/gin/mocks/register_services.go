package mocks

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vialkit/vial"
	"github.com/vialkit/vial/internal/examples/gin/setup"
)

// RegisterTestServices registers everything the application would, then
// silences the logger. Tests override the registrations they want to
// control, typically the storage.Connection with a MockConnection.
func RegisterTestServices(c *vial.Container) {
	setup.RegisterServices(c)

	vial.Singleton(c, func(*vial.Container) (*logrus.Logger, error) {
		logger := logrus.New()
		logger.Out = io.Discard
		return logger, nil
	})
}
