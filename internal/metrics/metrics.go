package metrics

const Namespace = "pettymatters"
