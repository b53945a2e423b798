package remote

import (
	"path"

	"github.com/melbahja/goph"
	"github.com/pkg/sftp"

	"github.com/kjk/properties"
)

// SFTPConfig describes an SSH host to exchange config documents with.
type SFTPConfig struct {
	User string
	// host name or ip, without port
	Addr       string
	KeyPath    string
	Passphrase string
}

// SFTPClient is an open SFTP session. Not safe for concurrent use.
type SFTPClient struct {
	ssh  *goph.Client
	sftp *sftp.Client
}

// DialSFTP connects and authenticates with the private key at
// c.KeyPath. Close the client when done.
func DialSFTP(c *SFTPConfig) (*SFTPClient, error) {
	auth, err := goph.Key(c.KeyPath, c.Passphrase)
	if err != nil {
		return nil, err
	}
	ssh, err := goph.New(c.User, c.Addr, auth)
	if err != nil {
		return nil, err
	}
	ftp, err := ssh.NewSftp()
	if err != nil {
		ssh.Close()
		return nil, err
	}
	Logf("DialSFTP %s@%s\n", c.User, c.Addr)
	return &SFTPClient{ssh: ssh, sftp: ftp}, nil
}

func (c *SFTPClient) Close() error {
	err := c.sftp.Close()
	err2 := c.ssh.Close()
	if err != nil {
		return err
	}
	return err2
}

// DownloadProperties fetches and parses the document at remotePath.
func (c *SFTPClient) DownloadProperties(remotePath string) (*properties.Properties, error) {
	f, err := c.sftp.Open(remotePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p := properties.New()
	if err = p.Load(f); err != nil {
		Logf("DownloadProperties %s failed: %v\n", remotePath, err)
		return nil, err
	}
	Logf("DownloadProperties %s: %d entries\n", remotePath, p.Size())
	return p, nil
}

// UploadProperties stores p at remotePath, creating parent directories
// as needed.
func (c *SFTPClient) UploadProperties(remotePath string, p *properties.Properties, comment string) error {
	if dir := path.Dir(remotePath); dir != "." && dir != "/" {
		if err := c.sftp.MkdirAll(dir); err != nil {
			return err
		}
	}
	f, err := c.sftp.Create(remotePath)
	if err != nil {
		return err
	}
	err = p.Store(f, comment)
	err2 := f.Close()
	if err != nil {
		Logf("UploadProperties %s failed: %v\n", remotePath, err)
		return err
	}
	if err2 != nil {
		return err2
	}
	Logf("UploadProperties %s: %d entries\n", remotePath, p.Size())
	return nil
}
