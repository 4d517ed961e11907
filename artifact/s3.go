package artifact

import (
	"bytes"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"text2crisis.com/drc/logger"
)

var s3Logger = logger.NewLogger("S3Store")

type S3Config struct {
	Bucket string `envconfig:"DRC_MODELS_BUCKET"`
	Region string `envconfig:"DRC_MODELS_REGION" default:"us-east-1"`
	Prefix string `envconfig:"DRC_MODELS_PREFIX" default:"models"`
}

// S3Store mirrors a saved model artifact to an S3 bucket. Constructed only
// when DRC_MODELS_BUCKET is set; a batch run performs a single upload so
// the session lives exactly as long as the store.
type S3Store struct {
	sess   *session.Session
	config S3Config
}

// NewS3Store reads the bucket configuration from the environment. Returns
// (nil, nil) when no bucket is configured; the caller skips mirroring.
func NewS3Store() (*S3Store, error) {
	var config S3Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.Wrap(err, "failed to read S3 store environment")
	}
	if config.Bucket == "" {
		return nil, nil
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(config.Region)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create S3 session")
	}
	return &S3Store{sess: sess, config: config}, nil
}

// UploadFile mirrors the artifact at filePath under the configured prefix.
func (store *S3Store) UploadFile(filePath, key string) error {
	fdlLogger := s3Logger.With().
		Str("bucket", store.config.Bucket).
		Str("key", store.key(key)).
		Logger()

	body, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to read artifact file: %s", filePath)
	}

	uploader := s3manager.NewUploader(store.sess)
	fdlLogger.Debug().Msg("Uploading artifact")
	_, err = uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(store.config.Bucket),
		Key:    aws.String(store.key(key)),
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		return errors.Wrap(err, "failed to upload artifact")
	}

	fdlLogger.Info().Msg("Uploaded model artifact")
	return nil
}

// Download fetches a previously mirrored artifact.
func (store *S3Store) Download(key string) ([]byte, error) {
	downloader := s3manager.NewDownloader(store.sess)
	buf := aws.NewWriteAtBuffer([]byte{})
	_, err := downloader.Download(buf, &s3.GetObjectInput{
		Bucket: aws.String(store.config.Bucket),
		Key:    aws.String(store.key(key)),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to download artifact")
	}
	return buf.Bytes(), nil
}

func (store *S3Store) key(name string) string {
	if store.config.Prefix == "" {
		return name
	}
	return store.config.Prefix + "/" + name
}
