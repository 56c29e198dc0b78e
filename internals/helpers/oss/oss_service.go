// internals/helpers/oss/oss_service.go
package helpeross

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime/multipart"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

var (
	// guard ringan untuk uploader di controller
	MaxUploadSize = int64(5 * 1024 * 1024)

	// batas dimensi foto (spot/akomodasi); QR tidak lewat jalur ini
	maxImageW = 1600
	maxImageH = 1600

	webpQuality = float32(80)
)

type Service struct {
	bucket  *oss.Bucket
	baseURL string // https://{bucket}.{endpoint} atau CDN custom
	prefix  string // prefix key opsional, mis. "wisataku"
}

// NewOSSServiceFromEnv membangun service dari ENV:
// OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET, OSS_BUCKET, OSS_PUBLIC_BASE_URL (opsional).
func NewOSSServiceFromEnv(prefix string) (*Service, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	accessKey := getEnv("OSS_ACCESS_KEY_ID")
	secretKey := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || accessKey == "" || secretKey == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env belum lengkap")
	}

	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	baseURL := getEnv("OSS_PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}

	return &Service{
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		prefix:  strings.Trim(prefix, "/"),
	}, nil
}

func (s *Service) key(parts ...string) string {
	all := parts
	if s.prefix != "" {
		all = append([]string{s.prefix}, parts...)
	}
	return strings.Join(all, "/")
}

func (s *Service) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// UploadBytes mengunggah data mentah ke key deterministik dan mengembalikan
// URL publiknya. Dipakai QR issuance: key yang sama selalu menghasilkan URL
// yang sama sehingga re-issue tidak menggandakan objek.
func (s *Service) UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fullKey := s.key(key)
	err := s.bucket.PutObject(fullKey, bytes.NewReader(data),
		oss.ContentType(contentType),
		oss.ObjectACL(oss.ACLPublicRead),
	)
	if err != nil {
		return "", fmt.Errorf("oss put %s: %w", fullKey, err)
	}
	return s.PublicURL(fullKey), nil
}

// UploadImageWebP: decode (ikuti EXIF orientation), resize bila melebihi batas,
// encode WebP, unggah ke {dir}/{uuid}.webp.
func (s *Service) UploadImageWebP(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi batas %d byte", MaxUploadSize)
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	src, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("file bukan gambar yang dikenali: %w", err)
	}

	src = scaleDown(src, maxImageW, maxImageH)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	name := fmt.Sprintf("%s/%d-%s.webp", strings.Trim(dir, "/"), time.Now().Unix(), uuid.NewString())
	return s.UploadBytes(ctx, name, buf.Bytes(), "image/webp")
}

// scaleDown mengecilkan gambar keep-aspect memakai CatmullRom; tidak pernah
// memperbesar.
func scaleDown(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	ratioW := float64(maxW) / float64(w)
	ratioH := float64(maxH) / float64(h)
	ratio := ratioW
	if ratioH < ratio {
		ratio = ratioH
	}
	nw, nh := int(float64(w)*ratio), int(float64(h)*ratio)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ExtractKeyFromPublicURL mengambil object key dari URL publik OSS.
func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", err
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("URL tidak memuat object key: %s", publicURL)
	}
	return key, nil
}
