package repository

import (
	assignmentRepo "towline/database/repository/assignment"
	boattowRepo "towline/database/repository/boattow"
	clientRepo "towline/database/repository/client"
	imagebucketRepo "towline/database/repository/imagebucket"
	providerRepo "towline/database/repository/provider"
	workerRepo "towline/database/repository/worker"
)

// Re-export the repository interfaces and constructors.

type ClientRepository = clientRepo.Repository

var NewMongoClientRepo = clientRepo.NewMongoClientRepo

type ProviderRepository = providerRepo.Repository

var NewMongoProviderRepo = providerRepo.NewMongoProviderRepo

type WorkerRepository = workerRepo.Repository

var NewMongoWorkerRepo = workerRepo.NewMongoWorkerRepo

type BoatTowRepository = boattowRepo.Repository

var NewMongoBoatTowRepo = boattowRepo.NewMongoBoatTowRepo

type AssignmentRepository = assignmentRepo.Repository

type AssignmentSearchCriteria = assignmentRepo.SearchCriteria

var NewMongoAssignmentRepo = assignmentRepo.NewMongoAssignmentRepo

type ImageBucketRepository = imagebucketRepo.Repository

var NewMongoImageBucketRepo = imagebucketRepo.NewMongoImageBucketRepo
