package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "quiz state",
			serviceName: ServiceQuiz,
			objectType:  ObjectState,
			identifier:  "01J8Z3",
			paramsKey:   nil,
			expectedKey: "autoworld:quiz:state:01J8Z3",
		},
		{
			name:        "with empty paramsKey",
			serviceName: ServiceBuilder,
			objectType:  ObjectState,
			identifier:  "abc",
			paramsKey:   []string{},
			expectedKey: "autoworld:builder:state:abc",
		},
		{
			name:        "sound wav with sample rate",
			serviceName: ServiceSound,
			objectType:  ObjectWAV,
			identifier:  "horn",
			paramsKey:   []string{"22050"},
			expectedKey: "autoworld:sound:wav:horn:22050",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "order",
			objectType:  "item",
			identifier:  "xyz",
			paramsKey:   []string{"param1", "param2", "param3"},
			expectedKey: "autoworld:order:item:xyz:param1_param2_param3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
