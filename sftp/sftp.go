package sftp

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// Config covers the Sierra export drop server. PrivateKey is the key
// material itself, not a path.
type Config struct {
	Username   string
	PrivateKey string
	Server     string
	Timeout    time.Duration
}

type Client struct {
	sshConn *ssh.Client
	client  *sftp.Client
}

func New(config Config) (*Client, error) {
	signer, err := ssh.ParsePrivateKey([]byte(config.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	sshConfig := &ssh.ClientConfig{
		User:            config.Username,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         config.Timeout,
	}

	conn, err := ssh.Dial("tcp", config.Server, sshConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", config.Server, err)
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to start sftp session: %w", err)
	}

	return &Client{sshConn: conn, client: client}, nil
}

func (c *Client) Download(remotePath string) (io.ReadCloser, error) {
	file, err := c.client.Open(remotePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote file %s: %w", remotePath, err)
	}

	return file, nil
}

// LatestExport returns the most recently modified file in dir, for pulling
// the current week's Sierra export without knowing its exact name.
func (c *Client) LatestExport(dir string) (string, error) {
	infos, err := c.client.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var latest string
	var latestMod time.Time
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if info.ModTime().After(latestMod) {
			latest = info.Name()
			latestMod = info.ModTime()
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no files found in %s", dir)
	}

	return latest, nil
}

func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		c.sshConn.Close()
		return err
	}

	return c.sshConn.Close()
}
