package storage

import (
	"encoding/json"
	"fmt"
)

// PublicReadPolicy bucket policy ให้ทุกคน GetObject ได้ (รูปเมนูเป็น public)
func PublicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Sid":       "PublicReadMenuImages",
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/*", bucket)},
			},
		},
	}
	data, _ := json.Marshal(policy)
	return string(data)
}
