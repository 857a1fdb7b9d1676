package resource

type createInput[C any] struct {
	Body C
}

type listInput struct {
	UserID string `path:"userId" doc:"ID владельца, должен совпадать с текущим пользователем"`
}

type itemInput struct {
	ID string `path:"id" doc:"ID записи"`
}

type updateInput[P any] struct {
	ID   string `path:"id" doc:"ID записи"`
	Body P
}
