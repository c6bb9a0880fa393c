package util

import (
	"fmt"
	"math"
	"photo-drop/internal/model"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

const bytesInMB = 1024 * 1024

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateFile : проверяет тип и размер файла.
// Тип проверяется первым, сообщается только первая найденная причина.
func ValidateFile(file model.FileDescriptor, allowedTypes []string, maxSizeMB float64) model.FileValidation {
	if !slices.Contains(allowedTypes, file.Type) {
		return model.FileValidation{
			Valid: false,
			Error: "file type not allowed. Allowed types: " + describeTypes(allowedTypes),
		}
	}

	sizeMB := float64(file.Size) / bytesInMB
	if sizeMB > maxSizeMB {
		return model.FileValidation{
			Valid: false,
			Error: fmt.Sprintf("file too large. Maximum: %sMB, your file: %.2fMB", formatMB(maxSizeMB), sizeMB),
		}
	}

	return model.FileValidation{Valid: true}
}

// describeTypes : image/jpeg -> JPEG
func describeTypes(types []string) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		subtype := t
		if _, after, ok := strings.Cut(t, "/"); ok {
			subtype = after
		}
		names = append(names, strings.ToUpper(subtype))
	}
	return strings.Join(names, ", ")
}

func formatMB(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// IsUploadWindowOpen : start <= now <= deadline, обе границы включены
func IsUploadWindowOpen(start, deadline, now time.Time) bool {
	return !now.Before(start) && !now.After(deadline)
}

// GetTimeRemaining : раскладывает оставшееся время на дни, часы, минуты и секунды.
// Дни не ограничены сверху.
func GetTimeRemaining(deadline, now time.Time) model.TimeRemaining {
	if !deadline.After(now) {
		return model.TimeRemaining{IsExpired: true}
	}

	total := int64(deadline.Sub(now) / time.Second)

	return model.TimeRemaining{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// FormatFileSize : 1536 -> "1.5 KB"
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}

	value := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizes[i]
}

func InviteURL(baseURL string, token string) string {
	return strings.TrimRight(baseURL, "/") + "/event/" + token
}
