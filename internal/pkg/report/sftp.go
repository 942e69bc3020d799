package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cesarbruschetta/api-fintech/configs"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

type SftpService struct {
}

func NewSftpService() *SftpService {
	return &SftpService{}
}

func (s *SftpService) sftpConnect() (*sftp.Client, error) {

	// Define the SSH config
	sshConfig := &ssh.ClientConfig{
		User: configs.SFTP_USER,
		Auth: []ssh.AuthMethod{
			ssh.Password(configs.SFTP_PASSWORD),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	// Connect to the SSH server
	conn, err := ssh.Dial("tcp", fmt.Sprintf("%s:%s", configs.SFTP_HOST, configs.SFTP_PORT), sshConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH: %w", err)
	}

	// Create a new SFTP client
	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create SFTP client: %w", err)
	}

	return client, nil
}

func (s *SftpService) UploadFileToSFTP(localFilePath, remoteFilePath string) error {
	client, err := s.sftpConnect()
	if err != nil {
		return err
	}
	defer client.Close()

	// Ensure the remote directory exists
	remoteDir := filepath.Dir(remoteFilePath)
	if _, err := client.Stat(remoteDir); os.IsNotExist(err) {
		err = client.MkdirAll(remoteDir)
		if err != nil {
			return fmt.Errorf("failed to create directory on SFTP server: %v", err)
		}
	}

	localFile, err := os.Open(localFilePath)
	if err != nil {
		return fmt.Errorf("could not open local file: %v", err)
	}
	defer localFile.Close()

	remoteFile, err := client.Create(remoteFilePath)
	if err != nil {
		return fmt.Errorf("could not create remote file: %v", err)
	}
	defer remoteFile.Close()

	_, err = remoteFile.ReadFrom(localFile)
	if err != nil {
		return fmt.Errorf("could not upload file to SFTP server: %v", err)
	}

	return nil
}

func (s *SftpService) DeleteLocalFile(filePath string) error {
	return os.Remove(filePath)
}
