package dto

import (
	"forge/internal/domains/project/model"
	"forge/shared"
	gDto "forge/shared/dto"
	gModel "forge/shared/model"
	"forge/shared/timezone"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title       string   `json:"title"       validate:"required,min=3,max=120"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Category    string   `json:"category"    validate:"required,oneof=residential commercial industrial custom"`
	Images      []string `json:"images"      validate:"omitempty,max=12,dive,url"`
	Location    string   `json:"location"    validate:"omitempty,max=160"`
	Year        int      `json:"year"        validate:"omitempty,gte=1990,lte=2100"`
}

func (c *CreateProjectRequest) ToModel(user string) model.Project {
	return model.Project{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Images:      c.Images,
		Location:    c.Location,
		Year:        c.Year,
		Status:      model.StatusDraft,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateProjectRequest struct {
	Title       string          `db:"title"       json:"title"       validate:"omitempty,min=3,max=120"`
	Description string          `db:"description" json:"description" validate:"omitempty,max=5000"`
	Category    string          `db:"category"    json:"category"    validate:"omitempty,oneof=residential commercial industrial custom"`
	Images      model.ImageList `db:"images"      json:"images"      validate:"omitempty,max=12,dive,url"`
	Location    string          `db:"location"    json:"location"    validate:"omitempty,max=160"`
	Year        int             `db:"year"        json:"year"        validate:"omitempty,gte=1990,lte=2100"`
}

type ProjectResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Location    string   `json:"location"`
	Year        int      `json:"year"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
	gDto.Metadata
}

func (r *ProjectResponse) FromModel(project model.Project) {
	r.ID = project.ID
	r.Title = project.Title
	r.Description = project.Description
	r.Category = project.Category
	r.Images = project.Images
	r.Location = project.Location
	r.Year = project.Year
	r.Status = project.Status
	r.Featured = project.Featured
	r.Metadata.FromModel(project.Metadata)
}

type GetProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	TotalData int               `json:"total_data"`
	TotalPage int               `json:"total_page"`
}

func (r *GetProjectsResponse) FromModels(models []model.Project, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Projects = make([]ProjectResponse, len(models))
	for i, m := range models {
		r.Projects[i].FromModel(m)
	}
}
