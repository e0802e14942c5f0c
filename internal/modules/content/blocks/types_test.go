package blocks

import (
	"testing"

	"github.com/sjcet-apps/billboard-core/internal/models"
)

func TestCreateBlockDTOValidate(t *testing.T) {
	cases := []struct {
		name    string
		dto     CreateBlockDTO
		wantErr error
	}{
		{"empty uses defaults", CreateBlockDTO{Type: models.BlockText}, nil},
		{"full width", CreateBlockDTO{Type: models.BlockText, Width: 12}, nil},
		{"min width", CreateBlockDTO{Type: models.BlockText, Width: 1}, nil},
		{"width too wide", CreateBlockDTO{Type: models.BlockText, Width: 13}, errWidthRange},
		{"negative width", CreateBlockDTO{Type: models.BlockText, Width: -1}, errWidthRange},
		{"min height", CreateBlockDTO{Type: models.BlockText, Height: 50}, nil},
		{"max height", CreateBlockDTO{Type: models.BlockText, Height: 640}, nil},
		{"height too short", CreateBlockDTO{Type: models.BlockText, Height: 49}, errHeightRange},
		{"height too tall", CreateBlockDTO{Type: models.BlockText, Height: 641}, errHeightRange},
		{"light theme", CreateBlockDTO{Type: models.BlockText, Theme: models.ThemeLight}, nil},
		{"dark theme", CreateBlockDTO{Type: models.BlockText, Theme: models.ThemeDark}, nil},
		{"system theme", CreateBlockDTO{Type: models.BlockText, Theme: models.ThemeSystem}, nil},
		{"unknown theme", CreateBlockDTO{Type: models.BlockText, Theme: "neon"}, errInvalidTheme},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.dto.validate(); err != tc.wantErr {
				t.Errorf("validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestUpdateBlockDTOValidate(t *testing.T) {
	intp := func(v int) *int { return &v }
	themep := func(v models.BlockTheme) *models.BlockTheme { return &v }

	cases := []struct {
		name    string
		dto     UpdateBlockDTO
		wantErr error
	}{
		{"no fields", UpdateBlockDTO{}, nil},
		{"valid resize", UpdateBlockDTO{Width: intp(4), Height: intp(200)}, nil},
		{"zero width rejected", UpdateBlockDTO{Width: intp(0)}, errWidthRange},
		{"width too wide", UpdateBlockDTO{Width: intp(20)}, errWidthRange},
		{"height too short", UpdateBlockDTO{Height: intp(10)}, errHeightRange},
		{"height too tall", UpdateBlockDTO{Height: intp(1000)}, errHeightRange},
		{"valid theme", UpdateBlockDTO{Theme: themep(models.ThemeDark)}, nil},
		{"unknown theme", UpdateBlockDTO{Theme: themep("sepia")}, errInvalidTheme},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.dto.validate(); err != tc.wantErr {
				t.Errorf("validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
