//go:build unix

package link

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// i2cSlaveIoctl is the Linux I2C_SLAVE ioctl request number, used to bind a
// slave address to an already-open bus device file.
const i2cSlaveIoctl = 0x0703

type unixI2CConn struct {
	f *os.File
}

func (c *unixI2CConn) Read(p []byte) (int, error)  { return c.f.Read(p) }
func (c *unixI2CConn) Write(p []byte) (int, error) { return c.f.Write(p) }
func (c *unixI2CConn) Close() error                { return c.f.Close() }

// OpenI2C opens an I2C bus device at the given identifier ("path[:slave]")
// and binds the slave address via I2C_SLAVE before performing the ping
// handshake.
func OpenI2C(identifier string) (*I2CLink, error) {
	path, slave, err := parseI2CIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrapf(ErrIOError, "open %s: %v", path, err)
	}
	if err := unix.IoctlSetInt(int(f.Fd()), i2cSlaveIoctl, int(slave)); err != nil {
		f.Close()
		return nil, errors.Wrapf(ErrIOError, "bind i2c slave 0x%02x: %v", slave, err)
	}
	l := newI2CLink(&unixI2CConn{f: f}, identifier)
	if _, _, err := l.Ping(); err != nil {
		f.Close()
		return nil, err
	}
	return l, nil
}
