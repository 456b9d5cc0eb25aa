package retriever

const (
	defaultSQLServerProcedure = "[dbo].[get_similar_items]"
	defaultPostgresFunction   = "get_similar_items"

	// OUTPUT variables are re-selected as the last result set
	sqlServerSearchBatch = `SET NOCOUNT ON;
DECLARE @result nvarchar(max);
DECLARE @error nvarchar(max);
EXEC %s @inputText = @searchTerm, @result = @result OUTPUT, @error = @error OUTPUT;
SELECT @result AS result, @error AS error;`

	// function with OUT parameters result and error
	postgresSearchQuery = `SELECT result, error FROM %s($1)`
)
