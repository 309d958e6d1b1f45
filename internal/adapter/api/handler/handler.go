package handler

import (
	"arunika/internal/upload"
	"arunika/internal/usecase"
)

var (
	projectHandler      *ProjectHandler
	serviceHandler      *ServiceHandler
	teamMemberHandler   *TeamMemberHandler
	milestoneHandler    *MilestoneHandler
	consultationHandler *ConsultationHandler
)

func Setup(
	projectUseCase *usecase.ProjectUseCase,
	serviceUseCase *usecase.ServiceUseCase,
	teamMemberUseCase *usecase.TeamMemberUseCase,
	milestoneUseCase *usecase.MilestoneUseCase,
	consultationUseCase *usecase.ConsultationUseCase,
	gate *upload.Gate,
) {
	projectHandler = NewProjectHandler(projectUseCase, gate)
	serviceHandler = NewServiceHandler(serviceUseCase, gate)
	teamMemberHandler = NewTeamMemberHandler(teamMemberUseCase, gate)
	milestoneHandler = NewMilestoneHandler(milestoneUseCase)
	consultationHandler = NewConsultationHandler(consultationUseCase)
}

func GetProjectHandler() *ProjectHandler {
	return projectHandler
}

func GetServiceHandler() *ServiceHandler {
	return serviceHandler
}

func GetTeamMemberHandler() *TeamMemberHandler {
	return teamMemberHandler
}

func GetMilestoneHandler() *MilestoneHandler {
	return milestoneHandler
}

func GetConsultationHandler() *ConsultationHandler {
	return consultationHandler
}
